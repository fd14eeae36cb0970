package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"iptv-hub/blog-backend/config"
	"iptv-hub/blog-backend/internal/model"
)

var (
	PostgresDB *gorm.DB
)

// InitDatabase 初始化数据库连接并迁移表结构
func InitDatabase() {
	databaseConf := config.Conf.Database

	db, err := InitPostgres(&PostgresConfig{
		Username:        databaseConf.Username,
		Password:        databaseConf.Password,
		Host:            databaseConf.Host,
		Port:            databaseConf.Port,
		Database:        databaseConf.Database,
		SSLMode:         databaseConf.SSLMode,
		LogLevel:        databaseConf.LogLevel,
		MaxIdleConns:    databaseConf.MaxIdleConns,
		MaxOpenConns:    databaseConf.MaxOpenConns,
		ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("数据库初始化失败")
	}
	PostgresDB = db

	// 初始化数据库表
	if err := model.InitTable(PostgresDB); err != nil {
		log.Fatal().Err(err).Msg("数据库表迁移失败")
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}

// PostgresConfig PostgreSQL 配置
type PostgresConfig struct {
	Username        string
	Password        string
	Host            string
	Port            int
	Database        string
	SSLMode         bool
	LogLevel        string // silent, error, warn, info
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// InitPostgres 初始化 PostgreSQL 连接
func InitPostgres(config *PostgresConfig) (*gorm.DB, error) {
	if config == nil {
		return nil, fmt.Errorf("配置不能为空")
	}

	setDefaults(config)

	dsn := buildDSN(config)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: getLogger(config.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %v", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %v", err)
	}

	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	log.Info().Str("host", config.Host).Str("database", config.Database).Msg("数据库连接成功")

	return db, nil
}

func setDefaults(c *PostgresConfig) {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 100
	}
	if c.ConnMaxLifetime == 0 {
		c.ConnMaxLifetime = time.Hour
	}
}

func buildDSN(c *PostgresConfig) string {
	sslmode := "disable"
	if c.SSLMode {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)
}

func getLogger(level string) logger.Interface {
	switch level {
	case "silent":
		return logger.Default.LogMode(logger.Silent)
	case "error":
		return logger.Default.LogMode(logger.Error)
	case "info":
		return logger.Default.LogMode(logger.Info)
	default:
		return logger.Default.LogMode(logger.Warn)
	}
}
