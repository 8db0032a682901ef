package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `<?xml version="1.0" encoding="utf-8"?>
<lenders>
	<lender id="north_1">
		<name>Northern Trade Credit</name>
		<baseRate>5.5</baseRate>
		<riskMultiplier low="1.0" medium="1.25" high="1.7"/>
		<processingFee>750</processingFee>
		<approvalTime>2-3 days</approvalTime>
		<features>
			<feature>Regional specialists</feature>
			<feature>Seasonal repayment holidays</feature>
		</features>
	</lender>
	<lender id="south_2">
		<name>Southbank Capital</name>
		<baseRate>4.2</baseRate>
		<riskMultiplier low="1.1" medium="1.4" high="2.1"/>
		<approvalTime>Same day</approvalTime>
	</lender>
</lenders>`

func TestParseXML(t *testing.T) {
	lenders, err := ParseXML(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, lenders, 2)

	first := lenders[0]
	assert.Equal(t, "north_1", first.ID)
	assert.Equal(t, "Northern Trade Credit", first.Name)
	assert.Equal(t, 5.5, first.BaseRate)
	assert.Equal(t, 1.25, first.RiskMultiplier.Medium)
	assert.Equal(t, 750.0, first.ProcessingFee)
	assert.Equal(t, "2-3 days", first.ApprovalTime)
	assert.Equal(t, []string{"Regional specialists", "Seasonal repayment holidays"}, first.Features)

	second := lenders[1]
	assert.Equal(t, 0.0, second.ProcessingFee)
	assert.Equal(t, 2.1, second.RiskMultiplier.High)
	assert.Empty(t, second.Features)
}

func TestParseXML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"not xml", `lenders`, "catalog XML"},
		{"wrong root", `<banks/>`, "no <lenders> root"},
		{
			"bad rate",
			`<lenders><lender id="a"><name>A</name><baseRate>abc</baseRate><riskMultiplier low="1" medium="1" high="1"/></lender></lenders>`,
			"baseRate",
		},
		{
			"missing multiplier",
			`<lenders><lender id="a"><name>A</name><baseRate>4</baseRate></lender></lenders>`,
			"riskMultiplier element not found",
		},
		{
			"missing tier attribute",
			`<lenders><lender id="a"><name>A</name><baseRate>4</baseRate><riskMultiplier low="1" high="2"/></lender></lenders>`,
			"riskMultiplier medium",
		},
		{
			"NaN rate",
			`<lenders><lender id="a"><name>A</name><baseRate>NaN</baseRate><riskMultiplier low="1" medium="1" high="1"/></lender></lenders>`,
			"base rate must be positive",
		},
		{
			"infinite multiplier",
			`<lenders><lender id="a"><name>A</name><baseRate>4</baseRate><riskMultiplier low="1" medium="+Inf" high="1"/></lender></lenders>`,
			"risk multipliers must be positive",
		},
		{
			"infinite fee",
			`<lenders><lender id="a"><name>A</name><baseRate>4</baseRate><riskMultiplier low="1" medium="1" high="1"/><processingFee>Inf</processingFee></lender></lenders>`,
			"processing fee must be non-negative",
		},
		{
			"fails catalog validation",
			`<lenders><lender id="a"><baseRate>4</baseRate><riskMultiplier low="1" medium="1" high="1"/></lender></lenders>`,
			"name is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
