package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func main() {
	// De Anza College school ID
	searchURL := "https://www.ratemyprofessors.com/search/professors/1967?q=" + url.QueryEscape("Clare Nguyen")

	fmt.Println("Fetching live search results from RateMyProfessors...")

	req, err := http.NewRequest(http.MethodGet, searchURL, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	fmt.Println("Status:", resp.Status)

	body, _ := io.ReadAll(resp.Body)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		fmt.Println("Error parsing HTML:", err)
		return
	}

	fmt.Println("\n--- 🔎 Teacher Cards Found ---")
	doc.Find("a[class*='TeacherCard']").Each(func(i int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("div[class*='CardName']").Text())
		score := strings.TrimSpace(card.Find("div[class*='CardNumRatingNumber']").Text())
		href, _ := card.Attr("href")

		fmt.Printf("[%d] %s | score=%s | %s\n", i, name, score, href)
	})
}
