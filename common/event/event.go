package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/giu"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	guiMux    sync.Mutex
	guiEvents []func()

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Panic("Could not subscribe to topic ", topic)
	}
}

// ConnectToGui subscribes a callback that mutates UI state. Bus handlers run
// on worker goroutines, so the callback is not invoked there; it is queued
// for DispatchGuiEvents and a repaint is requested, which gets the host's
// render loop to drain the queue on the UI thread.
func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		if logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Queueing GUI event for topic '%s' with %d arguments", topic, len(args))
		}
		s.guiMux.Lock()
		s.guiEvents = append(s.guiEvents, func() {
			reflect.ValueOf(callback).Call(args)
		})
		s.guiMux.Unlock()
		giu.Update()
	}
	if err := s.bus.Subscribe(string(topic), cb); err != nil {
		logger.Error.Panic("Could not subscribe to topic ", topic)
	}
}

// DispatchGuiEvents runs the queued GUI callbacks in publish order. The host
// calls this at the start of every render frame; UI state is only ever
// touched from the UI thread.
func (s *Broker) DispatchGuiEvents() {
	s.guiMux.Lock()
	events := s.guiEvents
	s.guiEvents = nil
	s.guiMux.Unlock()

	for _, event := range events {
		event()
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Sending to '%s'", topic)
	}
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Sending command to '%s': %s", topic, command)
	}
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ErrorOccurred, &api.ErrorCommand{Message: formattedMessage})
}
