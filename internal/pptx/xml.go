// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
)

type xPresentation struct {
	SlideIDs []xSlideID `xml:"sldIdLst>sldId"`
}

type xSlideID struct {
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type xCoreProperties struct {
	Title string `xml:"title"`
}

// xSlide covers slides and notes slides, which share the cSld layout.
type xSlide struct {
	CSld struct {
		Bg     *xBackground `xml:"bg"`
		SpTree xShapeTree   `xml:"spTree"`
	} `xml:"cSld"`
}

type xBackground struct {
	BgPr *struct {
		SolidFill *xSolidFill `xml:"solidFill"`
	} `xml:"bgPr"`
	BgRef *xSolidFill `xml:"bgRef"`
}

// xShapeTree is an spTree or grpSp. Children are kept in document order,
// which is the paint order.
type xShapeTree struct {
	Name  string
	Xfrm  *xXfrm
	Items []xShapeItem
}

type xShapeItem struct {
	Sp    *xSp
	Cxn   *xSp
	Pic   *xPic
	Frame *xGraphicFrame
	Group *xShapeTree
}

func (t *xShapeTree) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if err := t.decodeChild(d, el); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (t *xShapeTree) decodeChild(d *xml.Decoder, el xml.StartElement) error {
	switch el.Name.Local {
	case "sp":
		sp := &xSp{}
		if err := d.DecodeElement(sp, &el); err != nil {
			return err
		}
		t.Items = append(t.Items, xShapeItem{Sp: sp})
	case "cxnSp":
		sp := &xSp{}
		if err := d.DecodeElement(sp, &el); err != nil {
			return err
		}
		t.Items = append(t.Items, xShapeItem{Cxn: sp})
	case "pic":
		pic := &xPic{}
		if err := d.DecodeElement(pic, &el); err != nil {
			return err
		}
		t.Items = append(t.Items, xShapeItem{Pic: pic})
	case "graphicFrame":
		gf := &xGraphicFrame{}
		if err := d.DecodeElement(gf, &el); err != nil {
			return err
		}
		t.Items = append(t.Items, xShapeItem{Frame: gf})
	case "grpSp":
		g := &xShapeTree{}
		if err := d.DecodeElement(g, &el); err != nil {
			return err
		}
		t.Items = append(t.Items, xShapeItem{Group: g})
	case "nvGrpSpPr":
		var nv struct {
			CNvPr xNvProps `xml:"cNvPr"`
		}
		if err := d.DecodeElement(&nv, &el); err != nil {
			return err
		}
		t.Name = nv.CNvPr.Name
	case "grpSpPr":
		var pr struct {
			Xfrm *xXfrm `xml:"xfrm"`
		}
		if err := d.DecodeElement(&pr, &el); err != nil {
			return err
		}
		t.Xfrm = pr.Xfrm
	case "AlternateContent":
		return t.decodeAlternate(d)
	default:
		return d.Skip()
	}
	return nil
}

// decodeAlternate keeps the shapes of the mc:Fallback branch, which only
// uses elements every consumer understands.
func (t *xShapeTree) decodeAlternate(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local != "Fallback" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			var fb xShapeTree
			if err := d.DecodeElement(&fb, &el); err != nil {
				return err
			}
			t.Items = append(t.Items, fb.Items...)
		case xml.EndElement:
			return nil
		}
	}
}

type xNvProps struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	Descr  string `xml:"descr,attr"`
	Hidden bool   `xml:"hidden,attr"`
}

type xPlaceholder struct {
	Type string `xml:"type,attr"`
	Idx  string `xml:"idx,attr"`
}

type xNvShapeProps struct {
	CNvPr xNvProps `xml:"cNvPr"`
	NvPr  struct {
		Ph *xPlaceholder `xml:"ph"`
	} `xml:"nvPr"`
}

type xSp struct {
	NvSpPr    *xNvShapeProps `xml:"nvSpPr"`
	NvCxnSpPr *xNvShapeProps `xml:"nvCxnSpPr"`
	SpPr      xSpPr          `xml:"spPr"`
	TxBody    *xTextBody     `xml:"txBody"`
}

func (s *xSp) nv() xNvShapeProps {
	switch {
	case s.NvSpPr != nil:
		return *s.NvSpPr
	case s.NvCxnSpPr != nil:
		return *s.NvCxnSpPr
	default:
		return xNvShapeProps{}
	}
}

type xPic struct {
	NvPicPr struct {
		CNvPr xNvProps `xml:"cNvPr"`
	} `xml:"nvPicPr"`
	BlipFill struct {
		Blip struct {
			Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
			Link  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships link,attr"`
		} `xml:"blip"`
	} `xml:"blipFill"`
	SpPr xSpPr `xml:"spPr"`
}

type xGraphicFrame struct {
	NvGraphicFramePr struct {
		CNvPr xNvProps `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Xfrm    *xXfrm `xml:"xfrm"`
	Graphic struct {
		Data struct {
			URI   string  `xml:"uri,attr"`
			Table *xTable `xml:"tbl"`
			Chart *struct {
				RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
			} `xml:"chart"`
		} `xml:"graphicData"`
	} `xml:"graphic"`
}

type xPoint struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type xSize struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type xXfrm struct {
	Off   *xPoint `xml:"off"`
	Ext   *xSize  `xml:"ext"`
	ChOff *xPoint `xml:"chOff"`
	ChExt *xSize  `xml:"chExt"`
}

type xSpPr struct {
	Xfrm     *xXfrm `xml:"xfrm"`
	PrstGeom *struct {
		Prst string `xml:"prst,attr"`
	} `xml:"prstGeom"`
	CustGeom  *struct{}   `xml:"custGeom"`
	NoFill    *struct{}   `xml:"noFill"`
	SolidFill *xSolidFill `xml:"solidFill"`
	Ln        *xLine      `xml:"ln"`
}

type xLine struct {
	W         int64       `xml:"w,attr"`
	NoFill    *struct{}   `xml:"noFill"`
	SolidFill *xSolidFill `xml:"solidFill"`
}

// xSolidFill is any element holding one colour choice.
type xSolidFill struct {
	SrgbClr   *xColor `xml:"srgbClr"`
	SchemeClr *xColor `xml:"schemeClr"`
	SysClr    *xColor `xml:"sysClr"`
	PrstClr   *xColor `xml:"prstClr"`
}

type xColor struct {
	Val     string `xml:"val,attr"`
	LastClr string `xml:"lastClr,attr"`
	LumMod  *xVal  `xml:"lumMod"`
	LumOff  *xVal  `xml:"lumOff"`
	Tint    *xVal  `xml:"tint"`
	Shade   *xVal  `xml:"shade"`
	Alpha   *xVal  `xml:"alpha"`
}

type xVal struct {
	Val int `xml:"val,attr"`
}

type xTextBody struct {
	Paragraphs []xParagraph `xml:"p"`
}

type xParagraph struct {
	PPr   *xParagraphProps
	Items []xTextItem
}

// xTextItem is a run, a field or a line break, in document order.
type xTextItem struct {
	RPr   *xRunProps
	Text  string
	Break bool
}

func (p *xParagraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pPr":
				p.PPr = &xParagraphProps{}
				if err := d.DecodeElement(p.PPr, &el); err != nil {
					return err
				}
			case "r", "fld":
				var r struct {
					RPr *xRunProps `xml:"rPr"`
					T   string     `xml:"t"`
				}
				if err := d.DecodeElement(&r, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, xTextItem{RPr: r.RPr, Text: r.T})
			case "br":
				var br struct {
					RPr *xRunProps `xml:"rPr"`
				}
				if err := d.DecodeElement(&br, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, xTextItem{RPr: br.RPr, Text: "\n", Break: true})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type xParagraphProps struct {
	Algn   string    `xml:"algn,attr"`
	Lvl    int       `xml:"lvl,attr"`
	BuNone *struct{} `xml:"buNone"`
	BuChar *struct {
		Char string `xml:"char,attr"`
	} `xml:"buChar"`
	BuAutoNum *struct {
		Type    string `xml:"type,attr"`
		StartAt int    `xml:"startAt,attr"`
	} `xml:"buAutoNum"`
}

type xRunProps struct {
	Sz        int         `xml:"sz,attr"`
	B         bool        `xml:"b,attr"`
	I         bool        `xml:"i,attr"`
	U         string      `xml:"u,attr"`
	SolidFill *xSolidFill `xml:"solidFill"`
	Highlight *xSolidFill `xml:"highlight"`
	Latin     *struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
	HlinkClick *struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"hlinkClick"`
}

type xTable struct {
	GridCols []struct {
		W int64 `xml:"w,attr"`
	} `xml:"tblGrid>gridCol"`
	Rows []xTableRow `xml:"tr"`
}

type xTableRow struct {
	H     int64        `xml:"h,attr"`
	Cells []xTableCell `xml:"tc"`
}

type xTableCell struct {
	GridSpan int        `xml:"gridSpan,attr"`
	RowSpan  int        `xml:"rowSpan,attr"`
	HMerge   bool       `xml:"hMerge,attr"`
	VMerge   bool       `xml:"vMerge,attr"`
	TxBody   *xTextBody `xml:"txBody"`
	TcPr     *struct {
		LnL       *xLine      `xml:"lnL"`
		LnR       *xLine      `xml:"lnR"`
		LnT       *xLine      `xml:"lnT"`
		LnB       *xLine      `xml:"lnB"`
		SolidFill *xSolidFill `xml:"solidFill"`
	} `xml:"tcPr"`
}

type xTheme struct {
	Elements struct {
		ColorScheme struct {
			Colors []xSchemeColor `xml:",any"`
		} `xml:"clrScheme"`
		FontScheme struct {
			Major xFontSet `xml:"majorFont"`
			Minor xFontSet `xml:"minorFont"`
		} `xml:"fontScheme"`
	} `xml:"themeElements"`
}

type xSchemeColor struct {
	XMLName xml.Name
	SrgbClr *xColor `xml:"srgbClr"`
	SysClr  *xColor `xml:"sysClr"`
}

type xFontSet struct {
	Latin struct {
		Typeface string `xml:"typeface,attr"`
	} `xml:"latin"`
}

// xChartSpace is only inspected for the kind of its first plot.
type xChartSpace struct {
	PlotArea struct {
		Items []struct {
			XMLName xml.Name
		} `xml:",any"`
	} `xml:"chart>plotArea"`
}
