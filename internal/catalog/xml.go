package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/Dan9191/quote-service/internal/models"
)

// ParseXML reads a lender catalog document of the form
//
//	<lenders>
//	  <lender id="lender_1">
//	    <name>Premier Business Finance</name>
//	    <baseRate>4.5</baseRate>
//	    <riskMultiplier low="1.0" medium="1.3" high="1.8"/>
//	    <processingFee>1500</processingFee>
//	    <approvalTime>24-48 hours</approvalTime>
//	    <features><feature>Online account management</feature></features>
//	  </lender>
//	</lenders>
//
// The returned catalog is validated.
func ParseXML(r io.Reader) ([]models.LenderProfile, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse catalog XML: %w", err)
	}

	root := doc.SelectElement("lenders")
	if root == nil {
		return nil, fmt.Errorf("catalog XML has no <lenders> root")
	}

	var lenders []models.LenderProfile
	for _, el := range root.SelectElements("lender") {
		l, err := parseLender(el)
		if err != nil {
			return nil, err
		}
		lenders = append(lenders, l)
	}

	if err := Validate(lenders); err != nil {
		return nil, err
	}
	return lenders, nil
}

func parseLender(el *etree.Element) (models.LenderProfile, error) {
	id := strings.TrimSpace(el.SelectAttrValue("id", ""))
	l := models.LenderProfile{
		ID:           id,
		Name:         childText(el, "name"),
		ApprovalTime: childText(el, "approvalTime"),
		Features:     []string{},
	}

	var err error
	if l.BaseRate, err = parseNumber(childText(el, "baseRate")); err != nil {
		return l, fmt.Errorf("lender %s: baseRate: %w", id, err)
	}
	if fee := childText(el, "processingFee"); fee != "" {
		if l.ProcessingFee, err = parseNumber(fee); err != nil {
			return l, fmt.Errorf("lender %s: processingFee: %w", id, err)
		}
	}

	rm := el.SelectElement("riskMultiplier")
	if rm == nil {
		return l, fmt.Errorf("lender %s: riskMultiplier element not found", id)
	}
	for _, tier := range []struct {
		attr string
		dst  *float64
	}{
		{"low", &l.RiskMultiplier.Low},
		{"medium", &l.RiskMultiplier.Medium},
		{"high", &l.RiskMultiplier.High},
	} {
		if *tier.dst, err = parseNumber(rm.SelectAttrValue(tier.attr, "")); err != nil {
			return l, fmt.Errorf("lender %s: riskMultiplier %s: %w", id, tier.attr, err)
		}
	}

	for _, f := range el.FindElements("./features/feature") {
		if text := strings.TrimSpace(f.Text()); text != "" {
			l.Features = append(l.Features, text)
		}
	}
	return l, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("value is missing")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
