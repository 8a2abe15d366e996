package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaview.xyz/water-quality-dashboard/pkg/chart"
)

func TestComparisonNormalizesKeyedBackendPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/compare-graph-data", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Amsterdam,Oslo", r.URL.Query().Get("locations"))
		w.Write([]byte(`{
			"Amsterdam": [{"date": "2025-03-01", "value": 7.0}, {"date": "2025-03-02", "value": 7.2}],
			"Oslo": [{"date": "2025-03-02", "value": 6.5}, {"date": "2025-03-03", "value": 6.6}]
		}`))
	})
	d, _ := newTestDashboard(t, mux)

	c, err := d.Charts.Comparison(context.Background(),
		"2025-03-01", "2025-03-03", []string{"Amsterdam", "Oslo"}, "ph_value")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, c.Labels)
	require.Len(t, c.Datasets, 2)
	assert.Equal(t, "Amsterdam", c.Datasets[0].Label)
	assert.Nil(t, c.Datasets[0].Data[2])
	assert.Nil(t, c.Datasets[1].Data[0])
}

func TestComparisonRejectsEmptyPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/compare-graph-data", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	d, _ := newTestDashboard(t, mux)

	_, err := d.Charts.Comparison(context.Background(),
		"2025-03-01", "2025-03-03", []string{"Nowhere"}, "ph_value")
	assert.ErrorIs(t, err, chart.ErrNoData)
}

func TestSeriesPassesThroughGraphData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graph-data", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "temperature", r.URL.Query().Get("dataType"))
		w.Write([]byte(`[{"date": "2025-03-01", "value": 18.4}]`))
	})
	d, _ := newTestDashboard(t, mux)

	points, err := d.Charts.Series(context.Background(),
		"2025-03-01", "2025-03-02", "Amsterdam", "temperature")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 18.4, points[0].Value)
}
