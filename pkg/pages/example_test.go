package pages_test

import (
	"bytes"
	"fmt"

	"github.com/ahuangsnail/quire/pkg/pages"
)

func ExampleWrite() {
	ps := pages.PageSet{
		Unit: "pt",
		Pages: []pages.Page{
			{
				Width:  100,
				Height: 50,
				Texts:  []pages.Text{{X: 10, Y: 10, Size: 11, Text: "Hello"}},
			},
		},
	}

	var buf bytes.Buffer
	if err := pages.Write(ps, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(buf.String())
	// Output:
	// {
	//   "unit": "pt",
	//   "pages": [
	//     {
	//       "width": 100,
	//       "height": 50,
	//       "texts": [
	//         {
	//           "x": 10,
	//           "y": 10,
	//           "size": 11,
	//           "text": "Hello"
	//         }
	//       ]
	//     }
	//   ]
	// }
}

func ExampleRead() {
	jsonData := `{
		"title": "Report",
		"unit": "pt",
		"pages": [
			{"width": 595.28, "height": 841.89, "texts": [
				{"x": 72, "y": 72, "size": 11, "text": "Hello"}
			]}
		]
	}`

	ps, err := pages.Read(bytes.NewReader([]byte(jsonData)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Title:", ps.Title)
	fmt.Println("Pages:", len(ps.Pages))
	fmt.Println("Items:", ps.ItemCount())
	// Output:
	// Title: Report
	// Pages: 1
	// Items: 1
}
