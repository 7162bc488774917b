package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// прометеус метрики сервиса
var (
	// счётчик созданных коротких ссылок
	ShortURLsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shortener_urls_created_total",
		Help: "Количество созданных коротких ссылок",
	})

	// счётчик переходов по коротким ссылкам
	Redirects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shortener_redirects_total",
		Help: "Количество успешных переходов по коротким ссылкам",
	})

	// счётчик записей о переходах, потерянных из-за переполнения очереди
	ClicksDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shortener_clicks_dropped_total",
		Help: "Количество записей о переходах, отброшенных при переполнении очереди",
	})
)
