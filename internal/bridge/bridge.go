package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	goecharger "github.com/bkogler/goecharger-api-lite"
)

// serialKey is the status field carrying the device serial number. It has
// no translation rule and passes through unchanged.
const serialKey = "sse"

// Bridge polls a charger and mirrors its state to Home Assistant via MQTT
// discovery. Set commands received on MQTT are dispatched to the charger.
type Bridge struct {
	cfg      *Config
	client   *goecharger.Client
	logger   *slog.Logger
	entities map[string]Entity
}

// New creates a bridge for the given charger client.
func New(cfg *Config, client *goecharger.Client, logger *slog.Logger) *Bridge {
	return &Bridge{
		cfg:      cfg,
		client:   client,
		logger:   logger,
		entities: entities(client),
	}
}

// Run connects to the MQTT broker and bridges until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	serial, err := b.deviceSerial(ctx)
	if err != nil {
		return fmt.Errorf("read device serial: %w", err)
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", b.cfg.MQTT.Host, b.cfg.MQTT.Port))
	opts.SetUsername(b.cfg.MQTT.Username)
	opts.SetPassword(b.cfg.MQTT.Password)
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		b.logger.Error("MQTT connection lost", "error", err)
	}

	mc := mqtt.NewClient(opts)
	if token := mc.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to MQTT broker: %w", token.Error())
	}
	defer mc.Disconnect(250)

	topicPrefix := "goecharger_" + serial

	if err := b.publishDiscovery(mc, topicPrefix, serial); err != nil {
		return err
	}

	setTopic := topicPrefix + "/+/set"
	token := mc.Subscribe(setTopic, 1, b.handleSet(topicPrefix))
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %q: %w", setTopic, token.Error())
	}

	b.logger.Info("Bridge running", "serial", serial, "topic_prefix", topicPrefix,
		"interval", b.cfg.PollingInterval())

	ticker := time.NewTicker(b.cfg.PollingInterval())
	defer ticker.Stop()

	published := make(map[string]string)

	for {
		select {
		case <-ticker.C:
			b.poll(ctx, mc, topicPrefix, published)
		case <-ctx.Done():
			b.logger.Info("Bridge stopping")
			return nil
		}
	}
}

// deviceSerial reads the charger serial number for topic and device IDs.
func (b *Bridge) deviceSerial(ctx context.Context) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, b.cfg.ChargerTimeout())
	defer cancel()

	status, err := b.client.GetStatus(reqCtx, serialKey)
	if err != nil {
		return "", err
	}

	if v, ok := status.Get(serialKey); ok {
		if serial, ok := v.(string); ok && serial != "" {
			return serial, nil
		}
	}

	// older firmware omits the serial, fall back to the host
	return strings.NewReplacer(".", "-", ":", "-").Replace(b.cfg.Charger.Host), nil
}

// publishDiscovery announces every entity via Home Assistant MQTT discovery.
func (b *Bridge) publishDiscovery(mc mqtt.Client, topicPrefix, serial string) error {
	for key, entity := range b.entities {
		uid := serial + "_" + key
		config := map[string]any{
			"~":           topicPrefix + "/" + key,
			"state_topic": "~/state",
			"unique_id":   uid,
			"device": map[string]string{
				"identifiers": serial,
				"name":        b.cfg.Settings.DeviceName,
			},
		}
		for k, v := range entity.Config {
			config[k] = v
		}

		payload, err := json.Marshal(config)
		if err != nil {
			return fmt.Errorf("encode discovery config for %q: %w", key, err)
		}

		topic := "homeassistant/" + entity.Component + "/" + uid + "/config"
		if token := mc.Publish(topic, 1, true, payload); token.Wait() && token.Error() != nil {
			return fmt.Errorf("publish discovery config for %q: %w", key, token.Error())
		}
	}

	return nil
}

// handleSet dispatches an MQTT set command to the matching entity setter.
func (b *Bridge) handleSet(topicPrefix string) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		field := strings.TrimSuffix(strings.TrimPrefix(msg.Topic(), topicPrefix+"/"), "/set")
		payload := string(msg.Payload())

		entity, ok := b.entities[field]
		if !ok || entity.Setter == nil {
			b.logger.Warn("Set command for unknown entity", "field", field)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), b.cfg.ChargerTimeout())
		defer cancel()

		b.logger.Info("Setting value", "field", field, "value", payload)
		if err := entity.Setter(ctx, payload); err != nil {
			b.logger.Error("Set command failed", "field", field, "value", payload, "error", err)
		}
	}
}

// poll fetches the charger status and publishes changed entity states.
func (b *Bridge) poll(ctx context.Context, mc mqtt.Client, topicPrefix string, published map[string]string) {
	reqCtx, cancel := context.WithTimeout(ctx, b.cfg.ChargerTimeout())
	defer cancel()

	status, err := b.client.GetStatus(reqCtx, goecharger.StatusDefault...)
	if err != nil {
		b.logger.Error("Status poll failed", "error", err)
		return
	}

	for key, entity := range b.entities {
		state, ok := entity.Getter(status)
		if !ok {
			continue
		}
		if published[key] == state {
			continue
		}

		topic := topicPrefix + "/" + key + "/state"
		if token := mc.Publish(topic, 1, true, []byte(state)); token.Wait() && token.Error() != nil {
			b.logger.Error("State publish failed", "field", key, "error", token.Error())
			continue
		}

		b.logger.Debug("Published state", "field", key, "state", state)
		published[key] = state
	}
}
