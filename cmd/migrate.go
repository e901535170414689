package cmd

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"saborlocal.pe/SaborLocal/configs"
	"saborlocal.pe/SaborLocal/pkg/model"
	"saborlocal.pe/SaborLocal/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".SaborLocal.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	err = repo.DB.AutoMigrate(
		&model.User{}, &model.Establishment{},
		&model.DishCategory{}, &model.Dish{},
		&model.Review{}, &model.ReviewVote{},
		&model.Image{})
	if err != nil {
		return err
	}

	for _, entity := range []model.EntityType{model.EntityDish, model.EntityEstablishment, model.EntityReview} {
		dir := filepath.Join(conf.Uploads.Dir, string(entity))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		logger.Info("upload directory ready", zap.String("dir", dir))
	}

	return nil
}
