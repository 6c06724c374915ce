package config

import (
	"pdf-reader-api/internal/domain"
	"pdf-reader-api/internal/service"
	"pdf-reader-api/pkg/logger"
)

// Engine binds a read-pdf route to one PDF extraction backend
type Engine struct {
	Name        string
	Path        string
	Description string
	Service     *service.PDFService
}

// Container holds all application dependencies
type Container struct {
	Config    domain.Config
	Logger    domain.Logger
	Validator *service.UploadValidator
	Engines   []Engine

	appLogger *logger.AppLogger
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())
	validator := service.NewUploadValidator(config.GetMaxFileSize())

	newEngine := func(name, path, description string, opener domain.DocumentOpener) Engine {
		extractor := service.NewPDFExtractor(name, opener, appLogger)
		return Engine{
			Name:        extractor.Engine(),
			Path:        path,
			Description: description,
			Service:     service.NewPDFService(validator, extractor, config.GetExtractTimeout(), appLogger),
		}
	}

	return &Container{
		Config:    config,
		Logger:    appLogger,
		Validator: validator,
		Engines: []Engine{
			newEngine("mupdf", "/pymupdf/read-pdf",
				"Extract text from uploaded PDF file (MuPDF)", service.NewFitzOpener()),
			newEngine("ledongthuc", "/ledongthuc/read-pdf",
				"Extract text from uploaded PDF file (pure Go reader)", service.NewLedongthucOpener()),
		},
		appLogger: appLogger,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// Close flushes the logger
func (c *Container) Close() error {
	if c.appLogger == nil {
		return nil
	}
	return c.appLogger.Sync()
}
