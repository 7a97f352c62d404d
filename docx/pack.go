package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const documentOpen = `<w:document ` +
	`xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
	`<w:body>`

const documentClose = `<w:sectPr>` +
	`<w:pgSz w:w="11906" w:h="16838"/>` +
	`<w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134"/>` +
	`</w:sectPr></w:body></w:document>`

const relsRoot = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// numberingXML defines the single decimal list the remarks use.
const numberingXML = xmlHeader +
	`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0">` +
	`<w:start w:val="1"/>` +
	`<w:numFmt w:val="decimal"/>` +
	`<w:lvlText w:val="%1."/>` +
	`<w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr>` +
	`</w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

// Pack renders the document into a DOCX archive and returns its bytes.
func (d *Document) Pack() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(name, content string) error {
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("docx: create %s: %w", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			return fmt.Errorf("docx: write %s: %w", name, err)
		}
		return nil
	}

	if err := add("[Content_Types].xml", d.contentTypes()); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", relsRoot); err != nil {
		return nil, err
	}
	if err := add("word/document.xml", xmlHeader+documentOpen+strings.Join(d.blocks, "")+documentClose); err != nil {
		return nil, err
	}
	if err := add("word/_rels/document.xml.rels", d.documentRels()); err != nil {
		return nil, err
	}
	if d.numbered {
		if err := add("word/numbering.xml", numberingXML); err != nil {
			return nil, err
		}
	}
	for _, m := range d.media {
		w, err := zw.Create("word/media/" + m.name)
		if err != nil {
			return nil, fmt.Errorf("docx: create media %s: %w", m.name, err)
		}
		if _, err := w.Write(m.data); err != nil {
			return nil, fmt.Errorf("docx: write media %s: %w", m.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) contentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)

	seen := map[string]bool{}
	for _, m := range d.media {
		ext := m.name[strings.LastIndexByte(m.name, '.')+1:]
		if !seen[ext] {
			seen[ext] = true
			fmt.Fprintf(&b, `<Default Extension="%s" ContentType="%s"/>`, ext, m.contentType)
		}
	}

	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	if d.numbered {
		b.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func (d *Document) documentRels() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	if d.numbered {
		b.WriteString(`<Relationship Id="rIdNum" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	}
	for i, m := range d.media {
		fmt.Fprintf(&b,
			`<Relationship Id="rIdImg%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/%s"/>`,
			i+1, m.name)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}
