package period

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type plan struct {
	Name   string `json:"name" yaml:"name"`
	Period Period `json:"period" yaml:"period"`
}

func TestPeriodJSON(t *testing.T) {
	data, err := json.Marshal(plan{Name: "launch", Period: FY(2023, Q2)})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"launch","period":"FY2023 Q2"}`, string(data))

	var decoded plan
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, FY(2023, Q2), decoded.Period)

	err = json.Unmarshal([]byte(`{"period":"FY2023 Q9"}`), &decoded)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPeriodYAML(t *testing.T) {
	data, err := yaml.Marshal(plan{Name: "backlog", Period: TBD()})
	require.NoError(t, err)
	require.Equal(t, "name: backlog\nperiod: TBD\n", string(data))

	var decoded plan
	require.NoError(t, yaml.Unmarshal([]byte("name: rollout\nperiod: CY2022 Oct - CY2023 Jan\n"), &decoded))
	require.Equal(t, YearMonth(202210), decoded.Period.Start())
	require.Equal(t, YearMonth(202301), decoded.Period.End())
}

func TestMarshalZeroPeriod(t *testing.T) {
	_, err := Period{}.MarshalText()
	require.Error(t, err)
}
