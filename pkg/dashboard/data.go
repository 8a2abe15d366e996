package dashboard

import (
	"context"

	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/chart"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
	"aquaview.xyz/water-quality-dashboard/pkg/table"
)

func dataLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryData),
	)
}

func (d *Dashboard) summary(ctx context.Context) (models.SummaryInsights, error) {
	return d.Backend.SummaryInsights(ctx)
}

func (d *Dashboard) warnings(ctx context.Context) ([]models.Warning, error) {
	return d.Backend.Warnings(ctx)
}

func (d *Dashboard) recent(ctx context.Context, sortField string, ascending bool) ([]models.Reading, error) {
	rows, err := d.Backend.RecentData(ctx)
	if err != nil {
		return nil, err
	}
	table.SortReadings(rows, sortField, ascending)
	return rows, nil
}

func (d *Dashboard) correlation(ctx context.Context, location string) (*CorrelationCharts, error) {
	data, err := d.Backend.CorrelationData(ctx, location)
	if err != nil {
		return nil, err
	}
	return &CorrelationCharts{
		TemperatureVsPh: chart.ScatterSeries(data.Temperature, data.PhValue),
		TurbidityVsPh:   chart.ScatterSeries(data.Turbidity, data.PhValue),
	}, nil
}

func (d *Dashboard) allReadings(ctx context.Context) ([]models.Reading, error) {
	return d.Backend.AllData(ctx)
}

// Mutations deliberately do not patch any local cache: a successful write
// is followed by a full refetch, which becomes the admin table's new
// cached dataset.

func (d *Dashboard) createReading(ctx context.Context, input models.ReadingInput) ([]models.Reading, error) {
	if err := d.Backend.CreateData(ctx, input); err != nil {
		return nil, err
	}
	dataLogger().Info("Created reading", zap.String("location", input.Location))
	return d.Backend.AllData(ctx)
}

func (d *Dashboard) updateReading(ctx context.Context, id int, input models.ReadingInput) ([]models.Reading, error) {
	if err := d.Backend.UpdateData(ctx, id, input); err != nil {
		return nil, err
	}
	dataLogger().Info("Updated reading", zap.Int("id", id))
	return d.Backend.AllData(ctx)
}

func (d *Dashboard) deleteReading(ctx context.Context, id int) ([]models.Reading, error) {
	if err := d.Backend.DeleteData(ctx, id); err != nil {
		return nil, err
	}
	dataLogger().Info("Deleted reading", zap.Int("id", id))
	return d.Backend.AllData(ctx)
}

type IDataImpl struct {
	dashboard *Dashboard
}

func (id *IDataImpl) Summary(ctx context.Context) (models.SummaryInsights, error) {
	return id.dashboard.summary(ctx)
}

func (id *IDataImpl) Warnings(ctx context.Context) ([]models.Warning, error) {
	return id.dashboard.warnings(ctx)
}

func (id *IDataImpl) Recent(ctx context.Context, sortField string, ascending bool) ([]models.Reading, error) {
	return id.dashboard.recent(ctx, sortField, ascending)
}

func (id *IDataImpl) Correlation(ctx context.Context, location string) (*CorrelationCharts, error) {
	return id.dashboard.correlation(ctx, location)
}

func (id *IDataImpl) AllReadings(ctx context.Context) ([]models.Reading, error) {
	return id.dashboard.allReadings(ctx)
}

func (id *IDataImpl) CreateReading(ctx context.Context, input models.ReadingInput) ([]models.Reading, error) {
	return id.dashboard.createReading(ctx, input)
}

func (id *IDataImpl) UpdateReading(ctx context.Context, readingID int, input models.ReadingInput) ([]models.Reading, error) {
	return id.dashboard.updateReading(ctx, readingID, input)
}

func (id *IDataImpl) DeleteReading(ctx context.Context, readingID int) ([]models.Reading, error) {
	return id.dashboard.deleteReading(ctx, readingID)
}

func (d *Dashboard) GetIData() IData {
	return &IDataImpl{dashboard: d}
}
