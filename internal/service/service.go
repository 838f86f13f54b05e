package service

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/enerlytics/enerlytics/internal/lock"
	"github.com/enerlytics/enerlytics/internal/repository"
)

// ErrForbidden is returned when a device does not belong to the
// requesting user.
var ErrForbidden = errors.New("forbidden")

// ErrInvalid wraps input validation failures; handlers map it to 400.
var ErrInvalid = errors.New("invalid input")

type Services struct {
	Repos     *repository.Repos
	Dashboard *DashboardService
	Users     *UserService
	Devices   *DeviceService
}

func New(db *sqlx.DB, locker lock.Locker) *Services {
	repos := repository.New(db)
	return &Services{
		Repos:     repos,
		Dashboard: NewDashboard(repos, locker),
		Users:     NewUsers(repos),
		Devices:   NewDevices(repos),
	}
}
