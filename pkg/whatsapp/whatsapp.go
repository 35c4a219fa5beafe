package whatsapp

import (
	"context"
	"fmt"
	"os"
	"time"

	"BluewudSupport/database/postgres"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

// IWhatsappSender alerts the support staff number when a visitor escalates
// to a human agent.
type IWhatsappSender interface {
	SendHandoffAlert(ctx context.Context, visitorMessage string) error
	Disconnect() error
	IsConnected() bool
}

type whatsappSender struct {
	client      *whatsmeow.Client
	staffNumber string
}

func New() (IWhatsappSender, error) {
	dsn := postgres.FormatDSN()

	dbLog := waLog.Stdout("Database", "INFO", true)
	container, err := sqlstore.New(context.Background(), "postgres", dsn, dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get device store: %w", err)
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", "INFO", true))

	connected := make(chan bool)
	client.AddEventHandler(func(evt interface{}) {
		if _, ok := evt.(*events.Connected); ok {
			connected <- true
		}
	})

	if client.Store.ID == nil {
		qrChan, _ := client.GetQRChannel(context.Background())
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}

		go func() {
			for evt := range qrChan {
				if evt.Event == "code" {
					fmt.Println("QR Code:", evt.Code)
				}
			}
		}()
	} else {
		if err := client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
	}

	select {
	case <-connected:
	case <-time.After(60 * time.Second):
		return nil, fmt.Errorf("connection timeout")
	}

	return &whatsappSender{
		client:      client,
		staffNumber: os.Getenv("SUPPORT_WHATSAPP_NUMBER"),
	}, nil
}

func (w *whatsappSender) SendHandoffAlert(ctx context.Context, visitorMessage string) error {
	if w.staffNumber == "" {
		return fmt.Errorf("SUPPORT_WHATSAPP_NUMBER not configured")
	}

	jid := types.NewJID(w.staffNumber, types.DefaultUserServer)

	text := fmt.Sprintf("Chat handoff requested. Last visitor message: %s", visitorMessage)
	waMsg := &waProto.Message{
		Conversation: proto.String(text),
	}

	if _, err := w.client.SendMessage(ctx, jid, waMsg); err != nil {
		return fmt.Errorf("failed to send handoff alert: %w", err)
	}

	return nil
}

func (w *whatsappSender) Disconnect() error {
	w.client.Disconnect()
	return nil
}

func (w *whatsappSender) IsConnected() bool {
	return w.client.IsConnected()
}
