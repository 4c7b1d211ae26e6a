package dashboard

import (
	"encoding/json"
	"net/http"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/pquin/tumblr-scraper/internal/domain"
)

// StartServer serves charts over one saved JSON run file: post-type
// distribution, top tags, and matched-keyword hit counts.
func StartServer(dataFile string, port string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		posts := loadPosts(dataFile)

		// 1. Post Type Distribution
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Post Types"}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)

		typeCounts := make(map[string]int)
		for _, p := range posts {
			typeCounts[p.Type]++
		}

		var pieItems []opts.PieData
		for k, v := range typeCounts {
			pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
		}
		pie.AddSeries("Posts", pieItems)

		// 2. Top Tags
		tagBar := charts.NewBar()
		tagBar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Top Tags"}))

		tagCounts := make(map[string]int)
		for _, p := range posts {
			for _, tag := range p.Tags {
				tagCounts[tag]++
			}
		}
		tagX, tagY := topCounts(tagCounts, 15)
		tagBar.SetXAxis(tagX).AddSeries("Posts", tagY)

		// 3. Keyword Hits
		kwBar := charts.NewBar()
		kwBar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Keyword Hits"}))

		kwCounts := make(map[string]int)
		for _, p := range posts {
			for _, k := range p.MatchedKeywords {
				kwCounts[k]++
			}
		}
		kwX, kwY := topCounts(kwCounts, 15)
		kwBar.SetXAxis(kwX).AddSeries("Mentions", kwY)

		pie.Render(w)
		tagBar.Render(w)
		kwBar.Render(w)
	})

	return http.ListenAndServe(":"+port, nil)
}

func loadPosts(path string) []domain.Post {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var posts []domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil
	}
	return posts
}

func topCounts(counts map[string]int, n int) ([]string, []opts.BarData) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}

	var values []opts.BarData
	for _, k := range keys {
		values = append(values, opts.BarData{Value: counts[k]})
	}
	return keys, values
}
