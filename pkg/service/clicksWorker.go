package service

import (
	"context"
	"net"
	"time"

	"github.com/IPampurin/LinkShortener/pkg/db"
	"github.com/IPampurin/LinkShortener/pkg/metrics"
	"github.com/IPampurin/LinkShortener/pkg/useragent"
)

// clickJob - задание на фиксацию одного перехода по ссылке
type clickJob struct {
	shortURLID int
	shortCode  string
	clickedAt  time.Time
	ipAddress  string
	userAgent  string
	referer    string
}

// enqueueClick ставит переход в очередь без блокировки:
// при переполненной очереди запись отбрасывается с пометкой в логе и метрике,
// редирект из-за аналитики задерживаться не должен
func (s *Service) enqueueClick(job clickJob) {

	select {
	case s.clickCh <- job:
	default:
		metrics.ClicksDropped.Inc()
		s.log.Warn("очередь переходов переполнена, запись отброшена", "short_code", job.shortCode)
	}
}

// startClickWorkers запускает пул горутин-воркеров, разбирающих очередь переходов
func (s *Service) startClickWorkers(workerCount int) {

	if workerCount <= 0 {
		workerCount = 1
	}

	for i := 0; i < workerCount; i++ {
		s.wg.Add(1)
		go s.clickWorker()
	}
}

// clickWorker читает задания из очереди до её закрытия.
// Эффекты выполняются с отдельным фоновым контекстом: отмена входящего
// запроса (клиент отвалился после редиректа) не должна терять ни инкремент
// счётчика, ни запись о переходе.
func (s *Service) clickWorker() {

	defer s.wg.Done()

	for job := range s.clickCh {

		ctx := context.Background()

		// инкремент счётчика атомарный на стороне БД - одновременные
		// переходы по одному коду не теряют обновлений
		if err := s.link.IncrementAccess(ctx, job.shortCode, job.clickedAt); err != nil {
			s.log.Error("ошибка увеличения счётчика переходов", "error", err, "short_code", job.shortCode)
		}

		if err := s.recordClick(ctx, job); err != nil {
			s.log.Error("ошибка записи перехода", "error", err, "short_code", job.shortCode)
		}
	}
}

// recordClick разбирает User-Agent и сохраняет одну запись о переходе
// (отсутствующий или нераспознанный User-Agent даёт NULL-поля, но не ошибку)
func (s *Service) recordClick(ctx context.Context, job clickJob) error {

	info := useragent.Parse(job.userAgent)

	click := &db.Click{
		ShortURLID: job.shortURLID,
		ShortCode:  job.shortCode,
		ClickedAt:  job.clickedAt,
		IPAddress:  net.ParseIP(job.ipAddress), // если пусто, вернёт nil
		UserAgent:  job.userAgent,
		Referer:    job.referer,
		Browser:    info.Browser,
		Device:     info.Device,
		OS:         info.OS,
	}

	return s.clicks.SaveClick(ctx, click)
}
