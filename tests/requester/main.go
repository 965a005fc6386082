package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1/orders/", "order lookup url prefix")
	fixedNo := flag.String("order", "", "order number most requests ask for")
	flag.Parse()

	token := os.Getenv("TOKEN")
	if token == "" || *fixedNo == "" {
		fmt.Println("TOKEN env and -order flag are required")
		os.Exit(1)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(client, *baseURL, *fixedNo, token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomOrderNo() string {
	const hex = "0123456789ABCDEF"
	b := make([]byte, 12)
	for i := range b {
		b[i] = hex[rand.Intn(len(hex))]
	}
	return "PT" + time.Now().Format("060102") + string(b)
}

func doRequest(client *http.Client, baseURL, orderNo, token string) {
	if rand.Intn(5) == 0 {
		orderNo = randomOrderNo()
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+orderNo, nil)
	if err != nil {
		fmt.Println("request build failed:", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", req.URL, "->", resp.Status)
	resp.Body.Close()
}
