// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deckhtml/pkg/types"
)

const (
	nsDecl = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
	relsNS  = `http://schemas.openxmlformats.org/package/2006/relationships`
	relBase = `http://schemas.openxmlformats.org/officeDocument/2006/relationships`
)

func relsXML(items ...string) string {
	out := `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="` + relsNS + `">`
	for _, it := range items {
		out += it
	}
	return out + `</Relationships>`
}

func rel(id, typ, target string) string {
	return `<Relationship Id="` + id + `" Type="` + relBase + `/` + typ + `" Target="` + target + `"/>`
}

func externalRel(id, typ, target string) string {
	return `<Relationship Id="` + id + `" Type="` + relBase + `/` + typ + `" Target="` + target + `" TargetMode="External"/>`
}

func slideXML(shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8"?><p:sld ` + nsDecl + `><p:cSld>` +
		`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="F0F0F0"/></a:solidFill></p:bgPr></p:bg>` +
		`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr><p:grpSpPr/>` +
		shapes + `</p:spTree></p:cSld></p:sld>`
}

const themeXML = `<?xml version="1.0" encoding="UTF-8"?><a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">` +
	`<a:themeElements><a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/></a:minorFont></a:fontScheme>` +
	`</a:themeElements></a:theme>`

const slide1Shapes = `
<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
  <p:spPr><a:xfrm><a:off x="952500" y="476250"/><a:ext cx="9525000" cy="952500"/></a:xfrm></p:spPr>
  <p:txBody><a:bodyPr/><a:p><a:r><a:rPr lang="en-US" sz="4400" b="1"/><a:t>Quarterly Review</a:t></a:r></a:p></p:txBody></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="3" name="Body"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
  <p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="952500" cy="476250"/></a:xfrm>
    <a:solidFill><a:schemeClr val="accent1"><a:alpha val="50000"/></a:schemeClr></a:solidFill>
    <a:ln w="19050"><a:solidFill><a:srgbClr val="ff0000"/></a:solidFill></a:ln></p:spPr>
  <p:txBody><a:bodyPr/>
    <a:p><a:pPr algn="ctr"/><a:r><a:rPr sz="1800" i="1" u="sng"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill><a:latin typeface="+mn-lt"/></a:rPr><a:t>Intro </a:t></a:r><a:r><a:rPr><a:hlinkClick r:id="rIdLink"/></a:rPr><a:t>link</a:t></a:r></a:p>
    <a:p><a:r><a:t>Second line</a:t></a:r><a:br/><a:r><a:t>after break</a:t></a:r></a:p>
    <a:p><a:pPr><a:buChar char="&#8226;"/></a:pPr><a:r><a:t>Bullet </a:t></a:r><a:r><a:t>one</a:t></a:r></a:p>
    <a:p><a:pPr><a:buChar char="&#8226;"/></a:pPr><a:r><a:t>Bullet two</a:t></a:r></a:p>
    <a:p><a:pPr><a:buAutoNum type="arabicPeriod"/></a:pPr><a:r><a:t>Step</a:t></a:r></a:p>
    <a:p><a:pPr><a:buAutoNum type="arabicPeriod"/></a:pPr><a:r><a:t>Next</a:t></a:r></a:p>
  </p:txBody></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="4" name="Right Arrow 3"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
  <p:spPr><a:xfrm><a:off x="95250" y="95250"/><a:ext cx="190500" cy="95250"/></a:xfrm><a:prstGeom prst="rightArrow"><a:avLst/></a:prstGeom>
    <a:solidFill><a:schemeClr val="accent1"><a:lumMod val="50000"/></a:schemeClr></a:solidFill></p:spPr></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="5" name="Empty Placeholder"/><p:cNvSpPr/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>
<p:pic><p:nvPicPr><p:cNvPr id="6" name="Picture 5" descr="Logo"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>
  <p:blipFill><a:blip r:embed="rIdImg"/></p:blipFill>
  <p:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="952500" cy="952500"/></a:xfrm></p:spPr></p:pic>
<p:pic><p:nvPicPr><p:cNvPr id="7" name="Missing Picture"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>
  <p:blipFill><a:blip r:embed="rIdGone"/></p:blipFill><p:spPr/></p:pic>
<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="8" name="Table 7"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>
  <p:xfrm><a:off x="952500" y="952500"/><a:ext cx="1905000" cy="952500"/></p:xfrm>
  <a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>
    <a:tblGrid><a:gridCol w="952500"/><a:gridCol w="952500"/></a:tblGrid>
    <a:tr h="476250">
      <a:tc gridSpan="2"><a:txBody><a:bodyPr/><a:p><a:r><a:rPr sz="1200"/><a:t>Header</a:t></a:r></a:p></a:txBody>
        <a:tcPr><a:lnL w="12700"><a:solidFill><a:srgbClr val="000000"/></a:solidFill></a:lnL><a:solidFill><a:srgbClr val="CCCCCC"/></a:solidFill></a:tcPr></a:tc>
      <a:tc hMerge="1"><a:txBody><a:bodyPr/><a:p/></a:txBody><a:tcPr/></a:tc>
    </a:tr>
    <a:tr h="476250">
      <a:tc><a:txBody><a:bodyPr/><a:p><a:r><a:t>a</a:t></a:r></a:p><a:p><a:r><a:t>b</a:t></a:r></a:p></a:txBody><a:tcPr/></a:tc>
      <a:tc><a:tcPr/></a:tc>
    </a:tr>
  </a:tbl></a:graphicData></a:graphic></p:graphicFrame>
<p:grpSp><p:nvGrpSpPr><p:cNvPr id="9" name="Group 8"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
  <p:grpSpPr><a:xfrm><a:off x="952500" y="952500"/><a:ext cx="190500" cy="190500"/><a:chOff x="0" y="0"/><a:chExt cx="95250" cy="95250"/></a:xfrm></p:grpSpPr>
  <p:sp><p:nvSpPr><p:cNvPr id="10" name="Oval 9"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
    <p:spPr><a:xfrm><a:off x="9525" y="19050"/><a:ext cx="47625" cy="47625"/></a:xfrm><a:prstGeom prst="ellipse"/></p:spPr></p:sp>
</p:grpSp>
<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="11" name="Connector"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr>
  <p:spPr><a:prstGeom prst="straightConnector1"/></p:spPr></p:cxnSp>
<p:sp><p:nvSpPr><p:cNvPr id="3" name="Duplicate id"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr/>
  <p:txBody><a:bodyPr/><a:p><a:r><a:t>dup</a:t></a:r></a:p></p:txBody></p:sp>
<p:sp><p:nvSpPr><p:cNvPr id="12" name="Hidden" hidden="1"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr/>
  <p:txBody><a:bodyPr/><a:p><a:r><a:t>hidden</a:t></a:r></a:p></p:txBody></p:sp>
`

const slide2Shapes = `
<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="2" name="Chart 1"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>
  <p:xfrm><a:off x="0" y="0"/><a:ext cx="952500" cy="952500"/></p:xfrm>
  <a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/chart"><c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" r:id="rIdChart"/></a:graphicData></a:graphic></p:graphicFrame>
`

const chartXML = `<?xml version="1.0" encoding="UTF-8"?><c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart">` +
	`<c:chart><c:plotArea><c:layout/><c:barChart><c:barDir val="col"/></c:barChart><c:catAx/></c:plotArea></c:chart></c:chartSpace>`

const notesXML = `<?xml version="1.0" encoding="UTF-8"?><p:notes ` + nsDecl + `><p:cSld><p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr><p:grpSpPr/>` +
	`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image"/><p:cNvSpPr/><p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>` +
	`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes"/><p:cNvSpPr/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>` +
	`<p:txBody><a:bodyPr/><a:p><a:r><a:t>Talk about </a:t></a:r><a:r><a:t>sales</a:t></a:r></a:p><a:p><a:r><a:t>Then Q&amp;A</a:t></a:r></a:p></p:txBody></p:sp>` +
	`</p:spTree></p:cSld></p:notes>`

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func samplePackage() map[string]string {
	return map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"_rels/.rels":         relsXML(rel("rId1", "officeDocument", "ppt/presentation.xml")),
		"docProps/core.xml": `<?xml version="1.0"?><cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
			`xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title> Sales Deck </dc:title></cp:coreProperties>`,
		"ppt/presentation.xml": `<?xml version="1.0"?><p:presentation ` + nsDecl + `><p:sldIdLst>` +
			`<p:sldId id="256" r:id="rId2"/><p:sldId id="257" r:id="rId3"/><p:sldId id="258" r:id="rId99"/>` +
			`</p:sldIdLst></p:presentation>`,
		"ppt/_rels/presentation.xml.rels": relsXML(
			rel("rId1", "theme", "theme/theme1.xml"),
			rel("rId2", "slide", "slides/slide1.xml"),
			rel("rId3", "slide", "slides/slide2.xml"),
		),
		"ppt/theme/theme1.xml":  themeXML,
		"ppt/slides/slide1.xml": slideXML(slide1Shapes),
		"ppt/slides/_rels/slide1.xml.rels": relsXML(
			rel("rIdImg", "image", "../media/image1.png"),
			rel("rIdGone", "image", "../media/missing.png"),
			externalRel("rIdLink", "hyperlink", "https://example.com/docs"),
		),
		"ppt/media/image1.png":  string(pngBytes),
		"ppt/slides/slide2.xml": slideXML(slide2Shapes),
		"ppt/slides/_rels/slide2.xml.rels": relsXML(
			rel("rIdChart", "chart", "../charts/chart1.xml"),
			rel("rIdNotes", "notesSlide", "../notesSlides/notesSlide2.xml"),
		),
		"ppt/charts/chart1.xml":           chartXML,
		"ppt/notesSlides/notesSlide2.xml": notesXML,
	}
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readSample(t *testing.T) *types.Document {
	t.Helper()
	data := buildZip(t, samplePackage())
	doc, err := NewReader(types.ParseConfig{}, nil).ReadFrom(context.Background(), bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return doc
}

func shapeByID(t *testing.T, s types.Slide, id string) types.Shape {
	t.Helper()
	for _, sh := range s.Shapes {
		if sh.ID == id {
			return sh
		}
	}
	require.Failf(t, "shape not found", "id %s", id)
	return types.Shape{}
}

func TestReadDocument(t *testing.T) {
	doc := readSample(t)

	assert.Equal(t, "Sales Deck", doc.Title)
	require.Len(t, doc.Slides, 2, "slide with dangling relationship is skipped")
	assert.Equal(t, 1, doc.Slides[0].Number)
	assert.Equal(t, 2, doc.Slides[1].Number)
	assert.Equal(t, "Quarterly Review", doc.Slides[0].Title)
	assert.Equal(t, "Slide 2", doc.Slides[1].Title)
	require.NotNil(t, doc.Slides[0].Background)
	assert.Equal(t, "#F0F0F0", doc.Slides[0].Background.BackgroundColor)
}

func TestReadShapeOrderAndIDs(t *testing.T) {
	s := readSample(t).Slides[0]

	var ids []string
	for _, sh := range s.Shapes {
		ids = append(ids, sh.ID)
	}
	assert.Equal(t, []string{"2", "3", "4", "6", "7", "8", "10", "11", "3-2"}, ids)
}

func TestReadTitleShape(t *testing.T) {
	sh := shapeByID(t, readSample(t).Slides[0], "2")

	assert.Equal(t, 100.0, sh.X)
	assert.Equal(t, 50.0, sh.Y)
	assert.Equal(t, 1000.0, sh.Width)
	assert.Equal(t, 100.0, sh.Height)

	tb, ok := sh.Content.(types.TextBox)
	require.True(t, ok)
	require.Len(t, tb.Runs, 1)
	assert.Equal(t, "Quarterly Review", tb.Runs[0].Text)
	assert.True(t, tb.Runs[0].Bold)
	require.NotNil(t, tb.Runs[0].Style)
	assert.InDelta(t, 58.67, tb.Runs[0].Style.FontSize, 0.001)
}

func TestReadTextBody(t *testing.T) {
	sh := shapeByID(t, readSample(t).Slides[0], "3")

	require.NotNil(t, sh.Style)
	assert.Equal(t, "#4472C4", sh.Style.FillColor)
	assert.Equal(t, 0.5, sh.Style.Opacity)
	assert.Equal(t, "#FF0000", sh.Style.BorderColor)
	assert.Equal(t, 2.0, sh.Style.BorderWidth)
	assert.Equal(t, types.AlignCenter, sh.Style.Alignment)

	tb := sh.Content.(types.TextBox)
	var texts []string
	for _, r := range tb.Runs {
		texts = append(texts, r.Text)
	}
	assert.Equal(t, []string{
		"Intro ", "link",
		"\n",
		"Second line", "\n", "after break",
		"- Bullet one",
		"- Bullet two",
		"1. Step",
		"2. Next",
	}, texts)

	intro := tb.Runs[0]
	assert.True(t, intro.Italic)
	assert.True(t, intro.Underlined)
	require.NotNil(t, intro.Style)
	assert.Equal(t, "Calibri", intro.Style.FontFamily)
	assert.Equal(t, 24.0, intro.Style.FontSize)
	assert.Equal(t, "#000000", intro.Style.FontColor)

	assert.Equal(t, "https://example.com/docs", tb.Runs[1].Hyperlink)
	assert.Nil(t, tb.Runs[1].Style)
}

func TestReadGenericShapes(t *testing.T) {
	s := readSample(t).Slides[0]

	arrow := shapeByID(t, s, "4")
	assert.Equal(t, types.Generic{Name: "Right Arrow 3", ShapeType: "RIGHT_ARROW"}, arrow.Content)
	require.NotNil(t, arrow.Style)
	assert.Equal(t, "#203864", arrow.Style.FillColor)

	oval := shapeByID(t, s, "10")
	assert.Equal(t, types.Generic{Name: "Oval 9", ShapeType: "ELLIPSE"}, oval.Content)
	assert.Equal(t, 102.0, oval.X)
	assert.Equal(t, 104.0, oval.Y)
	assert.Equal(t, 10.0, oval.Width)
	assert.Equal(t, 10.0, oval.Height)

	cxn := shapeByID(t, s, "11")
	assert.Equal(t, types.Generic{Name: "Connector", ShapeType: "STRAIGHT_CONNECTOR1"}, cxn.Content)
}

func TestReadPictures(t *testing.T) {
	s := readSample(t).Slides[0]

	img := shapeByID(t, s, "6").Content.(types.Image)
	assert.Equal(t, pngBytes, img.Data)
	assert.Equal(t, "image/png", img.Type)
	assert.Equal(t, "Logo", img.AltText)
	assert.Equal(t, "Picture 5", img.Name)

	missing := shapeByID(t, s, "7").Content.(types.Image)
	assert.Nil(t, missing.Data)
	assert.Equal(t, "Missing Picture", missing.Name)
}

func TestReadTable(t *testing.T) {
	frame := shapeByID(t, readSample(t).Slides[0], "8").Content.(types.TableFrame)
	tbl := frame.Table
	require.NotNil(t, tbl)

	assert.Equal(t, 2, tbl.Rows)
	assert.Equal(t, 2, tbl.Columns)
	require.Len(t, tbl.Cells, 3, "merged continuation cell is dropped")

	header := tbl.Cells[0]
	assert.Equal(t, "Header", *header.Text)
	require.NotNil(t, header.Style)
	assert.Equal(t, "#CCCCCC", header.Style.FillColor)
	assert.Equal(t, "#000000", header.Style.BorderColor)
	assert.Equal(t, 1.33, header.Style.BorderWidth)
	assert.Equal(t, 16.0, header.Style.FontSize)

	body := tbl.Cells[1]
	assert.Equal(t, 1, body.Row)
	assert.Equal(t, 0, body.Column)
	assert.Equal(t, "a\nb", *body.Text)
	assert.Nil(t, body.Style)

	empty := tbl.Cells[2]
	assert.Nil(t, empty.Text)
}

func TestReadChartAndNotes(t *testing.T) {
	s := readSample(t).Slides[1]

	require.Len(t, s.Shapes, 1)
	assert.Equal(t, types.Chart{Name: "Chart 1", ChartType: "BAR"}, s.Shapes[0].Content)
	assert.Equal(t, "Talk about sales\nThen Q&A", s.Notes)
}

func TestReadErrors(t *testing.T) {
	r := NewReader(types.ParseConfig{}, nil)
	ctx := context.Background()

	_, err := r.ReadFrom(ctx, bytes.NewReader([]byte("not a zip")), 9)
	assert.Error(t, err)

	data := buildZip(t, map[string]string{"word/document.xml": "<w/>"})
	_, err = r.ReadFrom(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrNoPresentation)

	files := samplePackage()
	files["ppt/slides/slide1.xml"] = "<p:sld"
	data = buildZip(t, files)
	_, err = r.ReadFrom(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorContains(t, err, "slide 1")
}

func TestReadEntryLimit(t *testing.T) {
	files := samplePackage()
	data := buildZip(t, files)

	r := NewReader(types.ParseConfig{MaxEntrySize: 64}, nil)
	_, err := r.ReadFrom(context.Background(), bytes.NewReader(data), int64(len(data)))
	assert.ErrorContains(t, err, "exceeds maximum size")
}

func TestReadCanceled(t *testing.T) {
	data := buildZip(t, samplePackage())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(types.ParseConfig{}, nil).ReadFrom(ctx, bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, os.WriteFile(path, buildZip(t, samplePackage()), 0o644))

	doc, err := NewReader(types.ParseConfig{}, nil).Parse(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)
	assert.Len(t, doc.Slides, 2)
}

func TestUpperSnake(t *testing.T) {
	tests := map[string]string{
		"rightArrow":         "RIGHT_ARROW",
		"roundRect":          "ROUND_RECT",
		"ellipse":            "ELLIPSE",
		"flowChartProcess":   "FLOW_CHART_PROCESS",
		"straightConnector1": "STRAIGHT_CONNECTOR1",
		"bar3D":              "BAR3D",
	}
	for in, want := range tests {
		assert.Equal(t, want, upperSnake(in), in)
	}
}

func TestResolvePart(t *testing.T) {
	assert.Equal(t, "ppt/media/image1.png", resolvePart("ppt/slides/", "../media/image1.png"))
	assert.Equal(t, "ppt/slides/slide1.xml", resolvePart("ppt/", "slides/slide1.xml"))
	assert.Equal(t, "ppt/presentation.xml", resolvePart("", "/ppt/presentation.xml"))
	assert.Equal(t, "etc/passwd", resolvePart("ppt/slides/", "../../../../etc/passwd"))
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "image/jpeg", mediaType("ppt/media/a.JPG", nil))
	assert.Equal(t, "image/x-emf", mediaType("ppt/media/a.emf", nil))
	assert.Equal(t, "image/gif", mediaType("ppt/media/blob", []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00")))
	assert.Equal(t, "image/png", mediaType("ppt/media/blob", []byte("????")))
}

func TestThemeColor(t *testing.T) {
	th := newTheme(&xTheme{})
	white, _ := parseHex("FFFFFF")
	th.colors["lt1"] = white

	tests := []struct {
		name string
		fill *xSolidFill
		want string
	}{
		{"nil", nil, ""},
		{"srgb", &xSolidFill{SrgbClr: &xColor{Val: "00ff7f"}}, "#00FF7F"},
		{"bad srgb", &xSolidFill{SrgbClr: &xColor{Val: "zz"}}, ""},
		{"alias", &xSolidFill{SchemeClr: &xColor{Val: "bg1"}}, "#FFFFFF"},
		{"unknown scheme", &xSolidFill{SchemeClr: &xColor{Val: "phClr"}}, ""},
		{"lumMod", &xSolidFill{SchemeClr: &xColor{Val: "bg1", LumMod: &xVal{Val: 50000}}}, "#808080"},
		{"shade", &xSolidFill{SrgbClr: &xColor{Val: "FFFFFF", Shade: &xVal{Val: 0}}}, "#000000"},
		{"tint", &xSolidFill{SrgbClr: &xColor{Val: "000000", Tint: &xVal{Val: 0}}}, "#FFFFFF"},
		{"sys", &xSolidFill{SysClr: &xColor{Val: "window", LastClr: "123456"}}, "#123456"},
		{"preset", &xSolidFill{PrstClr: &xColor{Val: "red"}}, "#FF0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := th.color(tt.fill)
			assert.Equal(t, tt.want, got)
		})
	}
}
