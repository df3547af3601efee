package markup

import "testing"

func TestToHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello", "<p>hello</p>"},
		{"bold", "a **b** c", "<p>a <strong>b</strong> c</p>"},
		{"italic", "a *b* c", "<p>a <em>b</em> c</p>"},
		{"bold then italic", "**b** and *i*", "<p><strong>b</strong> and <em>i</em></p>"},
		{"paragraph split", "one\n\ntwo", "<p>one</p><p>two</p>"},
		{"line break", "one\ntwo", "<p>one<br>two</p>"},
		{"crlf normalized", "one\r\n\r\ntwo", "<p>one</p><p>two</p>"},
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
		{"unterminated bold left alone", "a **b", "<p>a **b</p>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToHTML(tc.in); got != tc.want {
				t.Fatalf("ToHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToHTMLEscapesBeforeStyling(t *testing.T) {
	got := ToHTML("<script>alert(1)</script> **bold**")
	want := "<p>&lt;script&gt;alert(1)&lt;/script&gt; <strong>bold</strong></p>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToHTMLIsDeterministic(t *testing.T) {
	in := "**a**\n\n*b*\nc"
	if ToHTML(in) != ToHTML(in) {
		t.Fatal("expected identical output for identical input")
	}
}
