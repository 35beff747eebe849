package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:9000/api/v1/orders"

var queries = []string{
	"",
	"?sort=eta:asc",
	"?sort=buyer:asc,eta:desc&per_page=10",
	"?q=PO-2025",
	"?year=2025&filter[transport]=sea",
	"?filter[transit_status]=en%20route",
	"?page=3&per_page=5",
	"?sort=bogus:asc", // should come back as 400
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	url := baseURL + queries[rand.Intn(len(queries))]

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	req.Header.Set("X-User-ID", fmt.Sprintf("%d", 1+rand.Intn(5)))
	req.Header.Set("X-User-Role", []string{"admin", "manager", "viewer", "user"}[rand.Intn(4)])

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("request error:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
