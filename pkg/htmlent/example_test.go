package htmlent_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/epithet-ssh/htmlencode/pkg/htmlent"
)

func ExampleEncoder() {
	enc := htmlent.NewEncoder(os.Stdout, htmlent.NewConfig())
	enc.Write([]byte(`<b>"Tom" & 'Jerry'</b>`))
	enc.Close()
	// Output: &lt;b&gt;&quot;Tom&quot; &amp; &#39;Jerry&#39;&lt;/b&gt;
}

func ExampleEncodeAll() {
	cfg := htmlent.NewConfig(htmlent.EncodeAll(), htmlent.Hex(), htmlent.NoTrailingNewline())
	fmt.Println(htmlent.EncodeString("<hi>", cfg))
	// Output: &#x3C;&#x68;&#x69;&#x3E;
}

func ExampleLineMode() {
	cfg := htmlent.NewConfig(htmlent.LineMode())
	fmt.Print(htmlent.EncodeString("a<b\nc>d", cfg))
	// Output:
	// a&lt;b
	// c&gt;d
}

func ExampleDecoder() {
	dec := htmlent.NewDecoder(strings.NewReader("&lt;p&gt;caf&#xE9;&#33;&lt;/p&gt;"), htmlent.NewConfig())

	var buf bytes.Buffer
	if _, err := dec.WriteTo(&buf); err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", buf.String())
	// Output: "<p>caf\xe9!</p>"
}

func ExampleEntityError() {
	_, err := htmlent.DecodeString("1 &lt; 2 &and; 3", htmlent.NewConfig())

	var entErr *htmlent.EntityError
	if errors.As(err, &entErr) {
		fmt.Println(entErr.Kind, entErr.Token, entErr.Offset)
	}
	fmt.Println(errors.Is(err, htmlent.ErrMalformedEntity))
	// Output:
	// unknown entity and 9
	// true
}
