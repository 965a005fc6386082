package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Line struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type Shipping struct {
	Address      string `json:"address"`
	District     string `json:"district,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	HomeDelivery bool   `json:"home_delivery"`
}

type Order struct {
	Items    []Line   `json:"items"`
	Shipping Shipping `json:"shipping"`
}

var districts = []struct {
	name   string
	postal string
}{
	{"Dhaka", "1209"},
	{"Dhaka", "1212"},
	{"Chattogram", "4000"},
	{"Sylhet", "3100"},
	{"Khulna", "9000"},
}

func generateRandomOrder(skus []string) Order {
	lines := make([]Line, 0, 3)
	for _, i := range rand.Perm(len(skus))[:1+rand.Intn(min(3, len(skus)))] {
		lines = append(lines, Line{SKU: skus[i], Quantity: 1 + rand.Intn(3)})
	}
	d := districts[rand.Intn(len(districts))]
	return Order{
		Items: lines,
		Shipping: Shipping{
			Address:      fmt.Sprintf("House %d, Road %d, %s %s", rand.Intn(100), rand.Intn(30), d.name, d.postal),
			District:     d.name,
			HomeDelivery: rand.Intn(2) == 0,
		},
	}
}

func signToken(secret, userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "order service base url")
	users := flag.String("users", "user-1,user-2,user-3", "comma separated buyer ids")
	skus := flag.String("skus", "TAG-CLASSIC,TAG-GLOW,COLLAR-S", "comma separated product skus")
	brokers := flag.String("brokers", "", "kafka brokers to tail order events from")
	topic := flag.String("topic", "order-events", "order events topic")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if *brokers != "" {
		go tail(ctx, strings.Split(*brokers, ","), *topic)
	}

	buyers := strings.Split(*users, ",")
	products := strings.Split(*skus, ",")
	client := &http.Client{Timeout: 10 * time.Second}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("shutting down generator")
			return
		case <-ticker.C:
			token, err := signToken(secret, buyers[rand.Intn(len(buyers))])
			if err != nil {
				log.Fatalf("failed to sign token: %v", err)
			}
			order := generateRandomOrder(products)
			key := uuid.NewString()

			// Every fifth order is sent twice with the same key to exercise replay.
			attempts := 1
			if rand.Intn(5) == 0 {
				attempts = 2
			}
			for range attempts {
				send(ctx, client, *baseURL, token, key, order)
			}
		}
	}
}

func send(ctx context.Context, client *http.Client, baseURL, token, key string, order Order) {
	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("failed to marshal order: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/v1/orders", bytes.NewReader(body))
	if err != nil {
		log.Printf("failed to build request: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	var created struct {
		OrderNo string `json:"order_no"`
		Total   int64  `json:"total"`
		Kind    string `json:"kind"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	log.Printf("POST /api/v1/orders key=%s -> %s order_no=%s total=%d kind=%s", key, resp.Status, created.OrderNo, created.Total, created.Kind)
}

func tail(ctx context.Context, brokers []string, topic string) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		Topic:       topic,
		GroupID:     "order-generator-" + uuid.NewString()[:8],
		StartOffset: kafka.LastOffset,
	})
	defer reader.Close()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("failed to read event: %v", err)
			}
			return
		}
		log.Printf("event key=%s %s", msg.Key, msg.Value)
	}
}
