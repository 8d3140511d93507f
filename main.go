package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/medcheck/ai-symptom-checker-backend/api"
	"github.com/medcheck/ai-symptom-checker-backend/internal/classifier"
	"github.com/medcheck/ai-symptom-checker-backend/internal/config"
	"github.com/medcheck/ai-symptom-checker-backend/internal/knowledge"
	"github.com/medcheck/ai-symptom-checker-backend/internal/resolver"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	res := resolver.New(knowledge.NewBase(), acquireClassifier(cfg))

	r := gin.Default()
	r.Use(api.CORS())
	r.Use(api.RequestID())

	h := api.NewHandler(res)
	r.POST("/check-symptoms", h.CheckSymptoms)
	r.GET("/health", h.Health)

	log.WithField("addr", cfg.Addr()).Info("starting symptom checker backend")
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

// acquireClassifier resolves the zero-shot capability exactly once. On any
// warm-up failure the service keeps running and unmatched symptoms resolve
// to the general fallback record; there is no per-request retry.
func acquireClassifier(cfg *config.Config) resolver.Classifier {
	clf := classifier.New(classifier.Config{
		BaseURL: cfg.ClassifierURL,
		Model:   cfg.ClassifierModel,
		Token:   cfg.ClassifierToken,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.WarmupTimeout())
	defer cancel()

	if err := clf.Warmup(ctx); err != nil {
		log.WithError(err).Error("zero-shot model unavailable, continuing with keyword matching only")
		return nil
	}

	log.WithField("model", cfg.ClassifierModel).Info("zero-shot model loaded successfully")
	return clf
}
