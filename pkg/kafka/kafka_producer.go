package kafka

import (
	"context"
	"log"

	json "github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// Kafka 生产者服务
// 定义接口，方便测试和替换
type ProducerService interface {
	Produce(ctx context.Context, key []byte, msg interface{}) error
	Close()
}

type kafkaProducer struct {
	signalWriter *kafka.Writer // 交易信号事件
}

func NewKafkaProducer(brokerURL, topic string) ProducerService {
	signalWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{}, // 保证写入负载均衡
	}
	return &kafkaProducer{signalWriter: signalWriter}
}

// Produce 序列化消息并写入 Kafka，key 用股票代码保证同一只股票的事件进同一分区
func (p *kafkaProducer) Produce(ctx context.Context, key []byte, msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.signalWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: data,
	})
}

func (p *kafkaProducer) Close() {
	if err := p.signalWriter.Close(); err != nil {
		log.Printf("Error closing Signal writer: %v", err)
	}
}
