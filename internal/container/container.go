package container

import (
	"cloud.google.com/go/storage"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/config"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/backend"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	gcsClient   *storage.Client

	coreClient   *backend.Client
	uploadClient *backend.Client
	botClient    *backend.Client
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

// SetRedis is optional; nil keeps upload progress in memory.
func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client  { return redisClient }

// SetGCS is optional; nil disables the document archive.
func SetGCS(s *storage.Client) { gcsClient = s }
func GetGCS() *storage.Client  { return gcsClient }

func SetCoreClient(c *backend.Client)   { coreClient = c }
func GetCoreClient() *backend.Client    { return coreClient }
func SetUploadClient(c *backend.Client) { uploadClient = c }

// GetUploadClient talks to the core backend with the longer upload timeout.
func GetUploadClient() *backend.Client {
	if uploadClient != nil {
		return uploadClient
	}
	return coreClient
}
func SetBotClient(c *backend.Client) { botClient = c }
func GetBotClient() *backend.Client  { return botClient }
