package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.uber.org/zap"
)

// ElementKind - 스타일을 적용할 markdown 요소 종류
type ElementKind string

const (
	KindHeading1   ElementKind = "h1"
	KindHeading2   ElementKind = "h2"
	KindHeading3   ElementKind = "h3"
	KindHeading4   ElementKind = "h4"
	KindHeading5   ElementKind = "h5"
	KindHeading6   ElementKind = "h6"
	KindParagraph  ElementKind = "p"
	KindBulletList ElementKind = "ul"
	KindOrdered    ElementKind = "ol"
	KindListItem   ElementKind = "li"
	KindBlockquote ElementKind = "blockquote"
	KindCode       ElementKind = "code"
	KindEmphasis   ElementKind = "em"
	KindStrong     ElementKind = "strong"
	KindLink       ElementKind = "a"
	KindTable      ElementKind = "table"
	KindRule       ElementKind = "hr"
)

// ElementStyles is the single element-to-class mapping used for every
// rendered document. Fenced code blocks take their style from the
// container (.markdown-body pre) since goldmark does not emit attributes
// on <pre>.
var ElementStyles = map[ElementKind]string{
	KindHeading1:   "md-h1",
	KindHeading2:   "md-h2",
	KindHeading3:   "md-h3",
	KindHeading4:   "md-h4",
	KindHeading5:   "md-h5",
	KindHeading6:   "md-h6",
	KindParagraph:  "md-paragraph",
	KindBulletList: "md-list",
	KindOrdered:    "md-list md-list-ordered",
	KindListItem:   "md-list-item",
	KindBlockquote: "md-blockquote",
	KindCode:       "md-inline-code",
	KindEmphasis:   "md-emphasis",
	KindStrong:     "md-strong",
	KindLink:       "md-link",
	KindTable:      "md-table",
	KindRule:       "md-divider",
}

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(styleTransformer{}, 999)),
	),
)

// Render converts markdown to HTML. Raw HTML in the source is dropped.
func Render(source string) template.HTML {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		zap.L().Warn("markdown render failed", zap.Error(err))
		return template.HTML("<p>" + template.HTMLEscapeString(source) + "</p>")
	}
	return template.HTML(buf.String())
}

// RenderNormalized is Render(Normalize(source)).
func RenderNormalized(source string) template.HTML {
	return Render(Normalize(source))
}

type styleTransformer struct{}

func (styleTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if class, ok := ElementStyles[kindOf(n)]; ok {
			n.SetAttributeString("class", []byte(class))
		}
		if _, ok := n.(*ast.Link); ok {
			n.SetAttributeString("target", []byte("_blank"))
			n.SetAttributeString("rel", []byte("noopener noreferrer"))
		}
		return ast.WalkContinue, nil
	})
}

func kindOf(n ast.Node) ElementKind {
	switch v := n.(type) {
	case *ast.Heading:
		return ElementKind("h" + string(rune('0'+v.Level)))
	case *ast.Paragraph:
		return KindParagraph
	case *ast.List:
		if v.IsOrdered() {
			return KindOrdered
		}
		return KindBulletList
	case *ast.ListItem:
		return KindListItem
	case *ast.Blockquote:
		return KindBlockquote
	case *ast.CodeSpan:
		return KindCode
	case *ast.Emphasis:
		if v.Level >= 2 {
			return KindStrong
		}
		return KindEmphasis
	case *ast.Link:
		return KindLink
	case *ast.ThematicBreak:
		return KindRule
	case *east.Table:
		return KindTable
	default:
		return ""
	}
}
