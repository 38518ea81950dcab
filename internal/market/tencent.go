package market

import (
	"context"
	"daypulse/conf"
	"daypulse/internal/model"
	"daypulse/pkg/logger"
	"fmt"
	"github.com/spf13/cast"
	"golang.org/x/text/encoding/simplifiedchinese"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// 腾讯行情数据源。实时行情与分时序列都是软失败：
// 出错返回nil/空序列，核心拿缓存数据继续

// 实时行情payload中的字段下标
const (
	fieldName   = 1
	fieldPrice  = 3
	fieldOpen   = 5
	fieldVolume = 6
	fieldChange = 32
	fieldHigh   = 33
	fieldLow    = 34

	minQuoteFields = 40
)

type Client struct {
	quoteURL  string
	minuteURL string
	client    *http.Client
}

func NewClient(cfg conf.MarketConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		quoteURL:  cfg.QuoteURL,
		minuteURL: cfg.MinuteURL,
		client:    &http.Client{Timeout: timeout},
	}
}

// normalizeSymbol 股票代码转交易所前缀格式：600586 -> sh600586
func normalizeSymbol(code string) string {
	code = strings.TrimSpace(code)
	if strings.HasPrefix(code, "sh") || strings.HasPrefix(code, "sz") {
		return code
	}
	// 沪市6开头，其余深市
	if strings.HasPrefix(code, "6") {
		return "sh" + code
	}
	return "sz" + code
}

// QuoteGet 抓取一只股票的实时行情
func (c *Client) QuoteGet(ctx context.Context, code string) (*model.Quote, error) {
	url := c.quoteURL + normalizeSymbol(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	// 接口返回GBK编码
	body, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		body = raw
	}
	return ParseQuote(code, string(body))
}

// ParseQuote 解析 v_sh600586="1~名称~代码~价格~..." 格式的行情
func ParseQuote(code, body string) (*model.Quote, error) {
	if !strings.Contains(body, "v_") {
		return nil, fmt.Errorf("unexpected quote payload for %s", code)
	}
	parts := strings.Split(body, "~")
	if len(parts) <= minQuoteFields {
		return nil, fmt.Errorf("quote payload too short for %s: %d fields", code, len(parts))
	}
	return &model.Quote{
		Code:      code,
		Name:      parts[fieldName],
		Price:     parseFloat(parts[fieldPrice]),
		ChangePct: parseFloat(parts[fieldChange]),
		Open:      parseFloat(parts[fieldOpen]),
		High:      parseFloat(parts[fieldHigh]),
		Low:       parseFloat(parts[fieldLow]),
		Volume:    parseFloat(parts[fieldVolume]),
	}, nil
}

// MinuteSeriesGet 抓取当日分时价格与成交量序列
func (c *Client) MinuteSeriesGet(ctx context.Context, code string) (model.PriceSeries, error) {
	url := c.minuteURL + normalizeSymbol(code) + ".js"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("fetch minutes: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("read body: %w", err)
	}
	return ParseMinuteSeries(string(body)), nil
}

// ParseMinuteSeries 解析分时数据，每行 "时间 价格 成交量"。
// 坏行直接跳过，解析不出任何样本时返回空序列
func ParseMinuteSeries(body string) model.PriceSeries {
	lines := strings.Split(body, "\\n\\")
	if len(lines) <= 1 {
		return model.PriceSeries{}
	}
	var series model.PriceSeries
	for _, line := range lines[1:] {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) < 3 {
			continue
		}
		price, err1 := strconv.ParseFloat(parts[1], 64)
		volume, err2 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		series.Prices = append(series.Prices, price)
		series.Volumes = append(series.Volumes, volume)
	}
	return series
}

// FetchPair 一次抓取 (行情, 分时) 数据对。
// 任一路失败记日志后继续，返回的对中对应部分为空
func (c *Client) FetchPair(ctx context.Context, code string) model.MarketData {
	data := model.MarketData{Code: code}

	quote, err := c.QuoteGet(ctx, code)
	if err != nil {
		logger.Warnf("quote fetch failed for %s: %v", code, err)
	} else {
		data.Quote = quote
	}

	series, err := c.MinuteSeriesGet(ctx, code)
	if err != nil {
		logger.Warnf("minute series fetch failed for %s: %v", code, err)
	} else {
		data.Series = series
	}
	return data
}

func parseFloat(s string) float64 {
	return cast.ToFloat64(strings.TrimSpace(s))
}
