package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

// Check reports liveness only; it does not touch the database.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	return map[string]string{
		"status":  "OK",
		"message": "Application is running",
	}
}
