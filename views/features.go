package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// FeatureList is the fixed content of the homepage feature grid.
var FeatureList = []FeatureRecord{
	{
		Title:       "技术分享",
		Icon:        "img/undraw_docusaurus_mountain.svg",
		Description: "分享编程经验、技术心得和项目实践。 从基础概念到高级应用，记录学习路上的点点滴滴。",
	},
	{
		Title:       "生活感悟",
		Icon:        "img/undraw_docusaurus_tree.svg",
		Description: "记录生活中的美好瞬间和思考感悟。 在忙碌的代码世界中，寻找生活的诗意与远方。",
	},
	{
		Title:       "学习笔记",
		Icon:        "img/undraw_docusaurus_react.svg",
		Description: "整理学习笔记，沉淀知识体系。 从零基础到进阶，与你一起成长进步。",
	},
}

// Features returns a copy of FeatureList.
func Features() []FeatureRecord {
	out := make([]FeatureRecord, len(FeatureList))
	copy(out, FeatureList)
	return out
}

// Feature renders a single feature card: icon, title and description.
func Feature(cfg SiteConfig, rec FeatureRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="col col--4"><div class="text--center">`)
		buf.WriteString(`<img class="featureSvg" role="img" src="`)
		buf.WriteString(href(AssetURL(cfg, rec.Icon)))
		buf.WriteString(`" alt="`)
		buf.WriteString(attr(rec.Title))
		buf.WriteString(`"></div><div class="text--center padding-horiz--md"><h3>`)
		buf.WriteString(text(rec.Title))
		buf.WriteString(`</h3><p>`)
		buf.WriteString(text(rec.Description))
		buf.WriteString(`</p></div></div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderFeatures maps each record to its card, preserving order.
func RenderFeatures(cfg SiteConfig, recs []FeatureRecord) []templ.Component {
	cards := make([]templ.Component, 0, len(recs))
	for _, rec := range recs {
		cards = append(cards, Feature(cfg, rec))
	}
	return cards
}

// HomepageFeatures renders the feature grid section.
func HomepageFeatures(cfg SiteConfig, recs []FeatureRecord) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="features"><div class="container"><div class="row">`)
		for _, card := range RenderFeatures(cfg, recs) {
			if err := card.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</div></div></section>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
