package handler

import (
	"github.com/soaresgus/community-backend/internal/app/user"
	"github.com/soaresgus/community-backend/internal/configs"
	"github.com/soaresgus/community-backend/internal/pkg/metrics"
)

// AppDeps carries everything the HTTP layer needs to serve requests.
type AppDeps struct {
	Config  *configs.AppConfig
	Users   *user.Service
	Metrics *metrics.HTTP
}
