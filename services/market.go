package services

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/madflojo/tasks"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/models"
	"github.com/likhonsheikh/tetheros-go/types/responses"
	"github.com/likhonsheikh/tetheros-go/utils"
)

const marketFeedTaskID = "market-feed-poll"

// Values displayed before the first successful refresh.
var seededSnapshot = models.MarketSnapshot{
	USDT: models.MarketPair{Price: "1.0002", Change24h: 0.05},
	BTC:  models.MarketPair{Price: "92,948.00", Change24h: 1.00},
	ETH:  models.MarketPair{Price: "3,124.29", Change24h: 3.53},
}

// Per-pair values used when a refresh succeeds but omits a tracked pair.
var pairFallbacks = map[string]models.MarketPair{
	PairUSDT: {Price: "0.9995", Change24h: 0.05},
	PairBTC:  {Price: "92,948.00", Change24h: 1.00},
	PairETH:  {Price: "3,124.29", Change24h: 3.53},
}

// MarketFeedService polls the market endpoint and keeps the last known good
// snapshot. Failures never blank the snapshot; the worst case is stale data.
type MarketFeedService interface {
	// Start refreshes immediately and schedules the recurring poll.
	Start() error
	// Stop cancels the recurring poll. Safe to call once per Start.
	Stop()
	Snapshot() models.MarketSnapshot
	// Subscribe registers a callback invoked after every successful refresh.
	Subscribe(fn func(models.MarketSnapshot))
}

func NewMarketFeedService(cfg *config.Config, scheduler *tasks.Scheduler, log *zap.Logger) MarketFeedService {
	return &marketFeedService{
		service:   service{cfg: cfg, log: log},
		scheduler: scheduler,
		client:    newHTTPClient(),
		snapshot:  seededSnapshot,
	}
}

type marketFeedService struct {
	service
	scheduler *tasks.Scheduler
	client    *http.Client

	mu          sync.RWMutex
	snapshot    models.MarketSnapshot
	subscribers []func(models.MarketSnapshot)
}

func (m *marketFeedService) Start() error {
	m.refresh()
	return m.scheduler.AddWithID(marketFeedTaskID, &tasks.Task{
		Interval: m.cfg.MarketPollInterval,
		TaskFunc: func() error {
			m.refresh()
			return nil
		},
	})
}

func (m *marketFeedService) Stop() {
	m.scheduler.Del(marketFeedTaskID)
}

func (m *marketFeedService) Snapshot() models.MarketSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func (m *marketFeedService) Subscribe(fn func(models.MarketSnapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

func (m *marketFeedService) refresh() {
	res, err := m.client.Get(m.cfg.MarketAPIBaseURL + "/api/market")
	if err != nil {
		m.log.Warn("fetching market data, retaining previous snapshot", zap.Error(err))
		return
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		m.log.Warn("market endpoint returned non-2xx, retaining previous snapshot", zap.Int("status", res.StatusCode))
		return
	}

	data := new(responses.MarketDataResponse)
	if err := json.NewDecoder(res.Body).Decode(data); err != nil {
		m.log.Warn("decoding market data, retaining previous snapshot", zap.Error(err))
		return
	}
	if !data.Success || data.Data == nil {
		m.log.Warn("market endpoint reported failure, retaining previous snapshot")
		return
	}

	snapshot := models.MarketSnapshot{
		USDT: normalizePair(data, PairUSDT, utils.FormatStablePrice),
		BTC:  normalizePair(data, PairBTC, utils.FormatGroupedPrice),
		ETH:  normalizePair(data, PairETH, utils.FormatGroupedPrice),
	}

	m.mu.Lock()
	m.snapshot = snapshot
	subscribers := make([]func(models.MarketSnapshot), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// normalizePair formats one tracked pair from the response, falling back per
// pair when the entry is missing or unparseable. One bad pair never blanks
// the others.
func normalizePair(data *responses.MarketDataResponse, pair string, format func(float64) string) models.MarketPair {
	var entry *responses.MarketPairResponse
	for _, d := range data.Data {
		if d != nil && d.Pair == pair {
			entry = d
			break
		}
	}
	if entry == nil {
		return pairFallbacks[pair]
	}

	price, err := strconv.ParseFloat(entry.Price, 64)
	if err != nil {
		return pairFallbacks[pair]
	}

	change, err := strconv.ParseFloat(entry.Change24h, 64)
	if err != nil {
		change = pairFallbacks[pair].Change24h
	}

	return models.MarketPair{
		Price:     format(price),
		Change24h: change,
	}
}
