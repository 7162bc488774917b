package service

import (
	"context"
	"strings"
	"sync"

	"github.com/IPampurin/LinkShortener/pkg/cache"
	"github.com/IPampurin/LinkShortener/pkg/configuration"
	"github.com/IPampurin/LinkShortener/pkg/db"
	"github.com/wb-go/wbf/logger"
)

type Service struct {
	link    db.ShortURLMethods
	clicks  db.ClickMethods
	cache   cache.CacheMethods
	baseURL string
	log     logger.Logger

	clickCh chan clickJob
	wg      sync.WaitGroup
}

func InitService(ctx context.Context, storage *db.DataBase, cache *cache.Cache, cfgApp *configuration.ConfApp, log logger.Logger) *Service {

	svc := &Service{
		link:    storage, // *db.DataBase реализует ShortURLMethods
		clicks:  storage, // *db.DataBase реализует ClickMethods
		baseURL: strings.TrimSuffix(cfgApp.BaseURL, "/"),
		log:     log,
		clickCh: make(chan clickJob, cfgApp.ClickQueue),
	}

	// при недоступном Redis работаем без кэша (cache == nil допустим)
	if cache != nil {
		svc.cache = cache
	}

	// запускаем пул воркеров записи переходов
	svc.startClickWorkers(cfgApp.ClickWorkers)

	return svc
}

// BuildShortURL собирает полный короткий URL вида {baseURL}/s/{shortCode}
func (s *Service) BuildShortURL(shortCode string) string {

	return s.baseURL + "/s/" + shortCode
}

// Close закрывает очередь переходов и дожидается, пока воркеры допишут
// уже принятые задания (вызывается при остановке приложения)
func (s *Service) Close() {

	close(s.clickCh)
	s.wg.Wait()
}
