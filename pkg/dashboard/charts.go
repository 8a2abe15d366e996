package dashboard

import (
	"context"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/chart"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

func chartsLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCharts),
	)
}

func (d *Dashboard) chartSeries(ctx context.Context, startDate, endDate, location, dataType string) ([]models.GraphPoint, error) {
	return d.Backend.GraphData(ctx, startDate, endDate, location, dataType)
}

func (d *Dashboard) chartComparison(ctx context.Context, startDate, endDate string, locations []string, dataType string) (*chart.ComparisonChart, error) {
	raw, err := d.Backend.CompareGraphData(ctx, startDate, endDate, locations, dataType)
	if err != nil {
		return nil, err
	}

	normalized, err := chart.Normalize(raw)
	if err != nil {
		chartsLogger().Warn("Comparison payload rejected",
			zap.Strings("locations", locations),
			zap.String("data_type", dataType),
			zap.Error(err))
		return nil, err
	}
	return normalized, nil
}

type IChartsImpl struct {
	dashboard *Dashboard
}

func (ic *IChartsImpl) Series(ctx context.Context, startDate, endDate, location, dataType string) ([]models.GraphPoint, error) {
	return ic.dashboard.chartSeries(ctx, startDate, endDate, location, dataType)
}

func (ic *IChartsImpl) Comparison(ctx context.Context, startDate, endDate string, locations []string, dataType string) (*chart.ComparisonChart, error) {
	return ic.dashboard.chartComparison(ctx, startDate, endDate, locations, dataType)
}

func (d *Dashboard) GetICharts() ICharts {
	return &IChartsImpl{dashboard: d}
}
