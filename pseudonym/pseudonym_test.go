package pseudonym

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/transcriptguard/redact/classify"
	"github.com/transcriptguard/redact/identity"
	"github.com/transcriptguard/redact/span"
)

func newTestContext(classifier classify.Classifier) *Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContext(context.Background(), identity.NewRegistry(), classifier, logger)
}

// applied runs Apply and indexes the replacements by span key.
func applied(c *Context, spans []span.Span) map[string]string {
	out := Apply(c, spans)
	replacements := make(map[string]string, len(out))
	for _, s := range out {
		replacements[s.Key()] = s.Replacement
	}
	return replacements
}

func TestPersonConsistency(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 10, Label: span.LabelPerson, Text: "John Smith"},
		{Start: 20, End: 24, Label: span.LabelPerson, Text: "John"},
		{Start: 30, End: 40, Label: span.LabelPerson, Text: "JOHN SMITH"},
	})

	assert.Equal(t, "[Person_1] [Person_2]", got["0|10"])
	assert.Equal(t, "[Person_1]", got["20|24"])
	assert.Equal(t, "[PERSON_1] [PERSON_2]", got["30|40"], "all-caps mention keeps caps")
}

func TestPersonInitialResolvesToSamePerson(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 10, End: 12, Label: span.LabelPerson, Text: "J."},
	})

	assert.Equal(t, "[Person_1]", got["0|4"])
	assert.Equal(t, "[PERSON_1]", got["10|12"], "a bare initial counts as an all-caps mention")
}

func TestPersonCutOffNameReusesRegistration(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 10, End: 13, Label: span.LabelPerson, Text: "Jo-"},
	})

	assert.Equal(t, "[Person_1]", got["0|4"])
	assert.Equal(t, "[Person_1]", got["10|13"])
}

func TestPersonSingleRuneSkipped(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 1, Label: span.LabelPerson, Text: "J"},
	})
	assert.Empty(t, got["0|1"])
}

func TestPersonTokenMarkers(t *testing.T) {
	c := newTestContext(nil)
	assert.Equal(t, "<unintelligible>", personToken(c, "unintelligible"))
	assert.Equal(t, "<inaudible>", personToken(c, "inaudible"))
	assert.Equal(t, "-", personToken(c, "-"))
}

func TestSpelledNameLinksToPerson(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 4, Label: span.LabelPerson, Text: "John"},
		{Start: 10, End: 17, Label: span.LabelSpelledName, Text: "J-O-H-N"},
		{Start: 30, End: 35, Label: span.LabelSpelledName, Text: "X-Y-Z"},
	})

	assert.Equal(t, "[SPELLED_NAME_PERSON_1]", got["10|17"])
	assert.Equal(t, "[SPELLED_NAME]", got["30|35"], "unmatched spelling degrades to the bare tag")
}

func TestReconstructSpelling(t *testing.T) {
	assert.Equal(t, "JOHN", reconstructSpelling("J-O-H-N"))
	assert.Equal(t, "JO BY", reconstructSpelling("J-O B-Y"))
	assert.Equal(t, "SMITH", reconstructSpelling("S—M-I-T-H"))
}

func TestOrganizationKeywordKinds(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 23, Label: span.LabelOrganization, Text: "Mule Creek State Prison"},
		{Start: 30, End: 43, Label: span.LabelOrganization, Text: "Folsom Prison"},
		{Start: 50, End: 59, Label: span.LabelOrganization, Text: "Acme Bank"},
	})

	// shortest name registers first, so Folsom takes Prison_1
	assert.Equal(t, "[Prison_1]", got["30|43"])
	assert.Equal(t, "[Prison_2]", got["0|23"])
	assert.Equal(t, "[Bank_1]", got["50|59"])
}

func TestOrganizationWholeWordReuse(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 9, Label: span.LabelOrganization, Text: "Acme Bank"},
		{Start: 20, End: 41, Label: span.LabelOrganization, Text: "the Acme Bank network"},
	})

	assert.Equal(t, "[Bank_1]", got["0|9"])
	assert.Equal(t, "[Bank_1]", got["20|41"])
}

func TestOrganizationClassifierSubtype(t *testing.T) {
	prisons := classify.Func(func(context.Context, string, []string) (string, error) {
		return "Prison", nil
	})
	c := newTestContext(prisons)
	got := applied(c, []span.Span{
		{Start: 0, End: 9, Label: span.LabelOrganization, Text: "Sing Sing"},
	})
	assert.Equal(t, "[Prison_1]", got["0|9"])
}

func TestOrganizationGenericFallback(t *testing.T) {
	c := newTestContext(classify.None)
	got := applied(c, []span.Span{
		{Start: 0, End: 9, Label: span.LabelOrganization, Text: "Sing Sing"},
		{Start: 20, End: 29, Label: span.LabelOrganization, Text: "ACME CORP"},
	})
	assert.Equal(t, "[Organization_1]", got["0|9"])
	assert.Equal(t, "[ORGANIZATION_2]", got["20|29"], "all-caps mention keeps caps")
}

func TestLocationCounty(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 17, Label: span.LabelLocation, Text: "Sacramento County"},
		{Start: 30, End: 47, Label: span.LabelLocation, Text: "sacramento county"},
	})
	assert.Equal(t, "[County_1]", got["0|17"])
	assert.Equal(t, "[County_1]", got["30|47"])
}

func TestLocationClassifierSubtype(t *testing.T) {
	cities := classify.Func(func(context.Context, string, []string) (string, error) {
		return "City", nil
	})
	c := newTestContext(cities)
	got := applied(c, []span.Span{
		{Start: 0, End: 10, Label: span.LabelLocation, Text: "Sacramento"},
	})
	assert.Equal(t, "[City_1]", got["0|10"])
}

func TestLocationPartReuse(t *testing.T) {
	c := newTestContext(classify.None)
	got := applied(c, []span.Span{
		{Start: 0, End: 10, Label: span.LabelLocation, Text: "Sacramento"},
		{Start: 20, End: 38, Label: span.LabelLocation, Text: "City of Sacramento"},
	})
	assert.Equal(t, "[Location_1]", got["0|10"])
	assert.Equal(t, "[Location_1]", got["20|38"])
}

func TestNormalizeNRP(t *testing.T) {
	c := newTestContext(nil)
	assert.Equal(t, "Catholic", normalizeNRP(c, "the Catholics"))
	assert.Equal(t, "Catholic", normalizeNRP(c, "ex-Catholic"))
	assert.Equal(t, "Islam", normalizeNRP(c, "Islamic"))
	assert.Equal(t, "Cuban", normalizeNRP(c, "a Cuban"))
}

func TestNRPSharedIdentityAcrossVariants(t *testing.T) {
	c := newTestContext(classify.None)
	got := applied(c, []span.Span{
		{Start: 0, End: 8, Label: span.LabelNRP, Text: "Catholic"},
		{Start: 20, End: 33, Label: span.LabelNRP, Text: "the Catholics"},
	})
	assert.Equal(t, "[NRP_1]", got["0|8"])
	assert.Equal(t, "[NRP_1]", got["20|33"])
}

func TestNRPClassifierSubtype(t *testing.T) {
	nationalities := classify.Func(func(context.Context, string, []string) (string, error) {
		return "Nationality", nil
	})
	c := newTestContext(nationalities)
	got := applied(c, []span.Span{
		{Start: 0, End: 5, Label: span.LabelNRP, Text: "Cuban"},
	})
	assert.Equal(t, "[NATIONALITY_1]", got["0|5"])
}

func TestDatePseudonym(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12/25/2001", "[DATE]"},
		{"May 5th, 2001", "[MONTH] [DAY], [YEAR]"},
		{"two thousand five", "[YEAR]"},
		{"nineteen eighty five", "[YEAR]"},
		{"the eighties", "the [DECADE]"},
		{"Monday", "[DAY_OF_WEEK]"},
		{"two thousand", ""},
		{"last week", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, datePseudonym(tt.in), tt.in)
	}
}

func TestTimeStrategy(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 20, Label: span.LabelTime, Text: "10:30 in the morning"},
		{Start: 30, End: 38, Label: span.LabelTime, Text: "around 3"},
		{Start: 50, End: 55, Label: span.LabelTime, Text: "1 day"},
	})
	assert.Equal(t, "[TIME] in the morning", got["0|20"])
	assert.Equal(t, "around [TIME]", got["30|38"])
	assert.Equal(t, "1 day", got["50|55"], "the digit 1 is not a clock value")
}

func TestAgeStrategy(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 20, Label: span.LabelAge, Text: "fifty five years old"},
		{Start: 30, End: 43, Label: span.LabelAge, Text: "21st birthday"},
		{Start: 50, End: 67, Label: span.LabelAge, Text: "one day at a time"},
	})
	assert.Equal(t, "[AGE] years old", got["0|20"])
	assert.Equal(t, "[AGE] birthday", got["30|43"])
	assert.Equal(t, "one day at a time", got["50|67"])
}

func TestHeightStrategy(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 12, Label: span.LabelHeight, Text: "six foot two"},
	})
	assert.Equal(t, "[HEIGHT] foot [HEIGHT]", got["0|12"])
}

func TestIDStrategyKeysOnDigits(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 7, Label: span.LabelID, Text: "AB-1234"},
		{Start: 10, End: 17, Label: span.LabelID, Text: "AB 1234"},
		{Start: 20, End: 26, Label: span.LabelID, Text: "XY-999"},
		{Start: 30, End: 33, Label: span.LabelID, Text: "ABC"},
	})
	assert.Equal(t, "[ID_1]", got["0|7"])
	assert.Equal(t, "[ID_1]", got["10|17"])
	assert.Equal(t, "[ID_2]", got["20|26"])
	assert.Empty(t, got["30|33"], "a mention without digits passes through")
}

func TestSimpleStrategies(t *testing.T) {
	c := newTestContext(nil)
	got := applied(c, []span.Span{
		{Start: 0, End: 16, Label: span.LabelEmail, Text: "John@Example.com"},
		{Start: 20, End: 36, Label: span.LabelEmail, Text: "john@example.com"},
		{Start: 40, End: 51, Label: span.LabelURL, Text: "example.com"},
		{Start: 60, End: 72, Label: span.LabelPhoneNumber, Text: "916-555-0100"},
		{Start: 80, End: 95, Label: span.LabelEmail, Text: "jane@other.com"},
	})
	assert.Equal(t, "[EMAIL_1]", got["0|16"])
	assert.Equal(t, "[EMAIL_1]", got["20|36"])
	assert.Equal(t, "[EMAIL_2]", got["80|95"])
	assert.Equal(t, "[URL_1]", got["40|51"])
	assert.Equal(t, "[PHONE_NUMBER_1]", got["60|72"])
}
