package main

import (
	"bufio"
	"chat-relay/client"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/services"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/gookit/color"
)

type Config struct {
	URL    string `env:"CLIENT_URL,default=ws://localhost:8080/ws"`
	UserID string `env:"CLIENT_USER_ID,required=true"`
	RoomID string `env:"CLIENT_ROOM_ID,required=true"`
	Token  string `env:"CLIENT_TOKEN"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		os.Exit(1)
	}
}

// run subscribes, then sends every stdin line to the room and prints what
// the room receives.
func run() error {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	header := http.Header{}
	if config.Token != "" {
		header.Set("Authorization", "Bearer "+config.Token)
	}
	c, err := client.Dial(ctx, config.URL, header)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ack, err := request(ctx, c, event.Subscribe, domain.SubscribeCommand{UserID: domain.UserID(config.UserID)})
	if err != nil {
		return err
	}
	var subscribed services.SubscribeResult
	if err := ack.Decode(&subscribed); err != nil {
		return err
	}
	color.Info.Printf("Subscribed as %s, %d rooms\n", config.UserID, len(subscribed.Rooms))

	go printEvents(ctx, c, domain.UserID(config.UserID))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		_, err := request(ctx, c, event.SendMessage, domain.SendMessageCommand{
			RoomID: domain.RoomID(config.RoomID),
			Sender: domain.UserID(config.UserID),
			Body:   line,
			TempID: uuid.NewString(),
		})
		if err != nil {
			color.Error.Println(err)
		}
	}
	return scanner.Err()
}

func request(ctx context.Context, c *client.Client, name event.Name, data any) (client.Ack, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ack, err := c.Request(ctx, name, data)
	if err != nil {
		return ack, err
	}
	if !ack.Success && ack.Error != nil {
		return ack, fmt.Errorf("%s refused: %s (%s)", name, ack.Error.Message, ack.Error.Kind)
	}
	return ack, nil
}

func printEvents(ctx context.Context, c *client.Client, self domain.UserID) {
	for {
		e, err := c.Next(ctx)
		if err != nil {
			return
		}
		switch e.Event {
		case event.MessageDelivered:
			var msg event.DeliveredMessage
			if json.Unmarshal(e.Data, &msg) != nil || msg.Sender == self {
				continue
			}
			fmt.Printf("%s %s\n", color.FgGreen.Render(string(msg.Sender)+":"), msg.Body)
		case event.CallIncoming:
			color.Warn.Println("Incoming call, answer from a browser client")
		default:
			fmt.Println(color.FgGray.Render(string(e.Event)))
		}
	}
}
