package notify

import (
	"context"
	"daypulse/conf"
	"daypulse/internal/model"
	"daypulse/pkg/kafka"
	"daypulse/pkg/logger"
	"daypulse/pkg/push/apns"
	"daypulse/utils"
	"fmt"
	"time"
)

// Notifier 信号与预警的外发通知。
// 所有实现都是尽力而为：失败只记日志，不阻塞信号流程
type Notifier interface {
	NotifySignal(ctx context.Context, event model.SignalEvent)
	NotifyAlert(ctx context.Context, quote *model.Quote, state model.AlertState)
}

// FanOut 依次调用多个通知渠道
type FanOut []Notifier

func (f FanOut) NotifySignal(ctx context.Context, event model.SignalEvent) {
	for _, n := range f {
		n.NotifySignal(ctx, event)
	}
}

func (f FanOut) NotifyAlert(ctx context.Context, quote *model.Quote, state model.AlertState) {
	for _, n := range f {
		n.NotifyAlert(ctx, quote, state)
	}
}

// New 按配置组装通知渠道，一个都没启用时返回空的FanOut
func New(cfg *conf.Config) FanOut {
	var out FanOut
	if cfg.Kafka.Enabled {
		out = append(out, NewKafkaNotifier(kafka.NewKafkaProducer(cfg.Kafka.Broker, cfg.Kafka.SignalTopic)))
	}
	if cfg.Apns.Enabled {
		out = append(out, NewApnsNotifier(apns.NewTokenApns(), cfg.Apns.DeviceToken))
	}
	return out
}

// KafkaNotifier 把信号事件发到事件总线，下游自行消费
type KafkaNotifier struct {
	producer kafka.ProducerService
}

func NewKafkaNotifier(producer kafka.ProducerService) *KafkaNotifier {
	return &KafkaNotifier{producer: producer}
}

func (k *KafkaNotifier) NotifySignal(ctx context.Context, event model.SignalEvent) {
	if err := k.producer.Produce(ctx, []byte(event.Code), event); err != nil {
		logger.Warnf("kafka signal publish failed: %v", err)
	}
}

func (k *KafkaNotifier) NotifyAlert(ctx context.Context, quote *model.Quote, state model.AlertState) {
	event := model.SignalEvent{
		Code:      quote.Code,
		Name:      quote.Name,
		Action:    string(state),
		Price:     quote.Price,
		Timestamp: time.Now().Unix(),
	}
	if err := k.producer.Produce(ctx, []byte(event.Code), event); err != nil {
		logger.Warnf("kafka alert publish failed: %v", err)
	}
}

func (k *KafkaNotifier) Close() {
	k.producer.Close()
}

// ApnsNotifier 推送到用户手机，替代原先的本地响铃震动
type ApnsNotifier struct {
	client      *apns.Apns
	deviceToken string
}

func NewApnsNotifier(client *apns.Apns, deviceToken string) *ApnsNotifier {
	return &ApnsNotifier{client: client, deviceToken: deviceToken}
}

func (a *ApnsNotifier) NotifySignal(ctx context.Context, event model.SignalEvent) {
	go a.push(&apns.PushMessage{
		Category: "signal",
		Title:    fmt.Sprintf("%s %s", event.Name, event.Code),
		Body:     fmt.Sprintf("触发%s信号 价格%.2f 评分%d", actionLabel(event.Action), event.Price, event.Score),
		Sound:    "default",
		ExtParams: map[string]interface{}{
			"code":  event.Code,
			"at":    utils.Stamp2str(event.Timestamp),
			"group": "signal",
		},
	})
}

func (a *ApnsNotifier) NotifyAlert(ctx context.Context, quote *model.Quote, state model.AlertState) {
	body := fmt.Sprintf("价格%.2f 突破预警上限", quote.Price)
	if state == model.AlertBreachedLow {
		body = fmt.Sprintf("价格%.2f 跌破预警下限", quote.Price)
	}
	go a.push(&apns.PushMessage{
		Category: "alert",
		Title:    fmt.Sprintf("%s %s", quote.Name, quote.Code),
		Body:     body,
		Sound:    "default",
		ExtParams: map[string]interface{}{
			"code":  quote.Code,
			"group": "alert",
		},
	})
}

func (a *ApnsNotifier) push(msg *apns.PushMessage) {
	if _, err := a.client.Push(msg, a.deviceToken); err != nil {
		logger.Warnf("apns push failed: %v", err)
	}
}

func actionLabel(action string) string {
	switch action {
	case "strong_buy":
		return "强买入"
	case "weak_buy":
		return "弱买入"
	case "sell_watch":
		return "卖出观察"
	default:
		return action
	}
}
