package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

var (
	ErrNoData   = errors.New("no data received from server")
	ErrBadShape = errors.New("unsupported data format received from server")
)

// palette is cycled by series index; mirrors the rendering side which
// expects rgba() color strings.
var palette = []string{
	"rgba(75, 192, 192, %s)",
	"rgba(255, 99, 132, %s)",
	"rgba(54, 162, 235, %s)",
	"rgba(255, 206, 86, %s)",
	"rgba(153, 102, 255, %s)",
	"rgba(255, 159, 64, %s)",
}

// LocationSeries is one location's (date, value) sequence after decoding.
type LocationSeries struct {
	Location string             `json:"location"`
	Data     []models.GraphPoint `json:"data"`
}

// Dataset is one renderable comparison series: Data is aligned to the
// shared axis, nil marking a date this location has no value for. The
// renderer must gap nil points, never interpolate them.
type Dataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
}

type ComparisonChart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

func Color(index int, opacity string) string {
	return fmt.Sprintf(palette[index%len(palette)], opacity)
}

func chartLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCharts),
	)
}

// DecodePayload normalizes the backend's comparison payload to a uniform
// series list. The backend has served three shapes over its lifetime:
//
//	[{"location": ..., "data": [{date, value}, ...]}, ...]
//	{"data": [ ...same array... ]}
//	{"Amsterdam": [{date, value}, ...], "Oslo": {"2025-01-02": 7.1}, ...}
//
// Each shape is tried explicitly; anything else is ErrBadShape.
func DecodePayload(raw json.RawMessage) ([]LocationSeries, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrNoData
	}

	var asList []LocationSeries
	if err := json.Unmarshal(raw, &asList); err == nil {
		return asList, nil
	}

	var wrapped struct {
		Data []LocationSeries `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, ErrBadShape
	}

	series := make([]LocationSeries, 0, len(keyed))
	for location, value := range keyed {
		points, err := decodeKeyedValue(value)
		if err != nil {
			// one bad location must not sink the whole chart
			chartLogger().Warn("Dropping location with undecodable series",
				zap.String("location", location), zap.Error(err))
			continue
		}
		series = append(series, LocationSeries{Location: location, Data: points})
	}
	// keep map iteration from reordering series between calls
	sort.Slice(series, func(i, j int) bool { return series[i].Location < series[j].Location })
	return series, nil
}

func decodeKeyedValue(raw json.RawMessage) ([]models.GraphPoint, error) {
	var points []models.GraphPoint
	if err := json.Unmarshal(raw, &points); err == nil {
		return points, nil
	}

	var wrapped struct {
		Data []models.GraphPoint `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		return wrapped.Data, nil
	}

	var byDate map[string]float64
	if err := json.Unmarshal(raw, &byDate); err != nil {
		return nil, ErrBadShape
	}
	points = make([]models.GraphPoint, 0, len(byDate))
	for date, value := range byDate {
		points = append(points, models.GraphPoint{Date: date, Value: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// BuildAxis returns the sorted union of all dates across every series.
// Lexicographic sort is chronological because dates are zero-padded
// YYYY-MM-DD strings.
func BuildAxis(series []LocationSeries) []string {
	seen := map[string]bool{}
	var axis []string
	for _, s := range series {
		for _, p := range s.Data {
			if p.Date == "" || seen[p.Date] {
				continue
			}
			seen[p.Date] = true
			axis = append(axis, p.Date)
		}
	}
	sort.Strings(axis)
	return axis
}

// BuildDatasets aligns every series to the axis, filling nil for axis
// dates the location has no value on. A series with no usable data is
// dropped with a warning rather than failing the render.
func BuildDatasets(series []LocationSeries, axis []string) []Dataset {
	var datasets []Dataset
	for i, s := range series {
		if s.Data == nil {
			chartLogger().Warn("Invalid data format for location",
				zap.String("location", s.Location))
			continue
		}

		byDate := map[string]float64{}
		for _, p := range s.Data {
			if p.Date == "" {
				continue
			}
			byDate[p.Date] = p.Value
		}

		data := common.Mapper(axis, func(date string) *float64 {
			if v, ok := byDate[date]; ok {
				value := v
				return &value
			}
			return nil
		})

		datasets = append(datasets, Dataset{
			Label:           s.Location,
			Data:            data,
			BorderColor:     Color(i, "1"),
			BackgroundColor: Color(i, "0.2"),
		})
	}
	return datasets
}

// Normalize is the full comparison pipeline: decode, axis union, per
// location alignment. It rejects payloads that yield no dates or no
// renderable series instead of producing an empty chart.
func Normalize(raw json.RawMessage) (*ComparisonChart, error) {
	series, err := DecodePayload(raw)
	if err != nil {
		return nil, err
	}

	axis := BuildAxis(series)
	if len(axis) == 0 {
		return nil, ErrNoData
	}

	datasets := BuildDatasets(series, axis)
	if len(datasets) == 0 {
		return nil, ErrNoData
	}

	return &ComparisonChart{Labels: axis, Datasets: datasets}, nil
}

// ScatterPoint is one correlation sample.
type ScatterPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries pairs the i-th entries of two parameter arrays. Extra
// entries past the shorter array are dropped.
func ScatterSeries(xs, ys []float64) []ScatterPoint {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	points := make([]ScatterPoint, n)
	for i := 0; i < n; i++ {
		points[i] = ScatterPoint{X: xs[i], Y: ys[i]}
	}
	return points
}
