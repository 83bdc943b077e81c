package project

import (
	"encoding/xml"
	"fmt"
	"io"

	"clipcut/internal/timecode"
	"clipcut/internal/timeline"
)

// document is the raw shape of a project file. Element order within each
// slice follows the source document.
type document struct {
	XMLName   xml.Name
	Chains    []chainElement    `xml:"chain"`
	Playlists []playlistElement `xml:"playlist"`
	Tractors  []tractorElement  `xml:"tractor"`
}

// chainElement declares one imported media asset.
type chainElement struct {
	ID         string            `xml:"id,attr"`
	Properties []propertyElement `xml:"property"`
}

type propertyElement struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// resource returns the declared resource path, if any.
func (c chainElement) resource() (string, bool) {
	for _, prop := range c.Properties {
		if prop.Name == "resource" {
			return prop.Value, true
		}
	}
	return "", false
}

// tractorElement declares the combined tracks and their hide flags.
type tractorElement struct {
	Tracks []trackDeclaration `xml:"track"`
}

type trackDeclaration struct {
	Producer string  `xml:"producer,attr"`
	Hide     *string `xml:"hide,attr"`
}

// playlistElement is one track lane. Its gap and clip children are order
// sensitive, so decoding walks the token stream instead of relying on
// per-tag struct fields.
type playlistElement struct {
	ID     string
	Events []timeline.Event
}

func (p *playlistElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			p.ID = attr.Value
		}
	}
	for {
		token, err := d.Token()
		if err == io.EOF {
			return fmt.Errorf("playlist %s: unexpected end of document", p.ID)
		}
		if err != nil {
			return err
		}
		switch tok := token.(type) {
		case xml.StartElement:
			event, err := p.decodeChild(d, tok)
			if err != nil {
				return err
			}
			if event != nil {
				p.Events = append(p.Events, event)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (p *playlistElement) decodeChild(d *xml.Decoder, start xml.StartElement) (timeline.Event, error) {
	switch start.Name.Local {
	case "blank":
		length, ok := findAttr(start, "length")
		if !ok {
			return nil, fmt.Errorf("playlist %s: blank entry missing length", p.ID)
		}
		parsed, err := timecode.Parse(length)
		if err != nil {
			return nil, fmt.Errorf("playlist %s: blank length: %w", p.ID, err)
		}
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return timeline.Gap{Length: parsed}, nil
	case "entry":
		producer, ok := findAttr(start, "producer")
		if !ok {
			return nil, fmt.Errorf("playlist %s: entry missing producer", p.ID)
		}
		in, inOK := findAttr(start, "in")
		out, outOK := findAttr(start, "out")
		if !inOK || !outOK {
			return nil, fmt.Errorf("playlist %s: entry %s missing in/out", p.ID, producer)
		}
		sourceIn, err := timecode.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("playlist %s: entry %s in: %w", p.ID, producer, err)
		}
		sourceOut, err := timecode.Parse(out)
		if err != nil {
			return nil, fmt.Errorf("playlist %s: entry %s out: %w", p.ID, producer, err)
		}
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return timeline.ClipRef{SourceID: producer, SourceIn: sourceIn, SourceOut: sourceOut}, nil
	default:
		// Transitions, filters, and other child kinds are outside the
		// extractable timeline.
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

func findAttr(start xml.StartElement, name string) (string, bool) {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}
