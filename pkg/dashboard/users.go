package dashboard

import (
	"context"

	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

// IUsers is the admin account-management surface; all calls proxy the
// backend's /admin/users endpoints.
type IUsers interface {
	List(ctx context.Context) ([]models.User, error)
	Add(ctx context.Context, req models.SignupRequest) error
	Update(ctx context.Context, id int, req models.SignupRequest) error
	Delete(ctx context.Context, id int) error
}

type IUsersImpl struct {
	dashboard *Dashboard
}

func (iu *IUsersImpl) List(ctx context.Context) ([]models.User, error) {
	return iu.dashboard.Backend.Users(ctx)
}

func (iu *IUsersImpl) Add(ctx context.Context, req models.SignupRequest) error {
	return iu.dashboard.Backend.AddUser(ctx, req)
}

func (iu *IUsersImpl) Update(ctx context.Context, id int, req models.SignupRequest) error {
	return iu.dashboard.Backend.UpdateUser(ctx, id, req)
}

func (iu *IUsersImpl) Delete(ctx context.Context, id int) error {
	return iu.dashboard.Backend.DeleteUser(ctx, id)
}

func (d *Dashboard) GetIUsers() IUsers {
	return &IUsersImpl{dashboard: d}
}
