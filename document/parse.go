package document

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/net/html/charset"
)

var xmlEncoding = regexp.MustCompile(`^\s*<\?xml[^>]*encoding\s*=\s*["']([A-Za-z0-9._-]+)["']`)

var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

// Parse reads an SVG document. The character encoding is taken from a byte order mark or the XML
// declaration and defaults to UTF-8.
func Parse(r io.Reader, opts Options) (*Document, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(1024)
	contentType := "image/svg+xml; charset=utf-8"
	if m := xmlEncoding.FindSubmatch(head); m != nil {
		contentType = "image/svg+xml; charset=" + string(m[1])
	}
	cr, err := charset.NewReader(br, contentType)
	if err != nil {
		return nil, fmt.Errorf("svg: %w", err)
	}

	z := parse.NewInput(cr)
	defer z.Restore()

	doc := New(opts)
	l := xml.NewLexer(z)
	var cur *Element
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if doc.Root == nil {
				return nil, fmt.Errorf("expected svg tag")
			} else if cur != nil {
				return nil, parse.NewErrorLexer(z, "unclosed tag %s", cur.Tag)
			}
			return doc, nil
		case xml.StartTagToken:
			tag := string(data[1:])
			el := doc.CreateElement(tag)
			if cur == nil {
				if doc.Root != nil {
					return nil, parse.NewErrorLexer(z, "multiple root elements")
				} else if tag != "svg" {
					return nil, parse.NewErrorLexer(z, "expected svg tag, got %s", tag)
				}
				doc.Root = el
			} else {
				cur.AppendChild(el)
			}

			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				el.SetAttribute(string(l.Text()), entityReplacer.Replace(string(val)))
			}
			if tt == xml.ErrorToken {
				if l.Err() == io.EOF {
					return nil, parse.NewErrorLexer(z, "unexpected end of file in tag %s", tag)
				}
				return nil, l.Err()
			} else if tt != xml.StartTagCloseVoidToken {
				cur = el
			}
		case xml.EndTagToken:
			tag := string(data[2 : len(data)-1])
			if cur == nil || cur.Tag != tag {
				return nil, parse.NewErrorLexer(z, "unexpected closing tag %s", tag)
			}
			cur = cur.parent
		case xml.TextToken:
			if cur != nil {
				cur.Text += entityReplacer.Replace(string(data))
			}
		case xml.CDATAToken:
			if cur != nil {
				cur.Text += string(cdataContent(data))
			}
		}
	}
}

func cdataContent(data []byte) []byte {
	if len(data) < 12 {
		return data
	}
	return data[9 : len(data)-3]
}

// parseInlineStyle parses the declarations of a style attribute.
func parseInlineStyle(s string) map[string]string {
	style := map[string]string{}
	p := css.NewParser(parse.NewInputString(s), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		} else if gt == css.DeclarationGrammar || gt == css.CustomPropertyGrammar {
			sb := strings.Builder{}
			for _, val := range p.Values() {
				sb.Write(val.Data)
			}
			style[strings.ToLower(string(data))] = strings.TrimSpace(sb.String())
		}
	}
	return style
}
