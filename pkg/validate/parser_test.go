package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/gowix/pkg/messages"
	"github.com/walteh/gowix/pkg/source"
	"github.com/walteh/gowix/pkg/validate"
)

func TestGetInteger(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      int
		wantCodes []int
	}{
		{name: "plain", value: "42", want: 42},
		{name: "negative", value: "-7", want: -7},
		{name: "empty is not set", value: "", want: validate.IntegerNotSet},
		{name: "garbage", value: "4x2", want: validate.IllegalInteger, wantCodes: []int{messages.CodeIllegalIntegerValue}},
		{name: "overflow", value: "4294967296", want: validate.IllegalInteger, wantCodes: []int{messages.CodeIllegalIntegerValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := messages.NewCollector()
			p := validate.NewParser(collector)

			got := p.GetInteger(source.Unknown, "Elem", "Attr", tt.value)

			assert.Equal(t, tt.want, got)
			assertCodes(t, collector, tt.wantCodes)
		})
	}
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      string
		wantCodes []int
	}{
		{name: "four fields", value: "1.2.3.4", want: "1.2.3.4"},
		{name: "single field", value: "7", want: "7"},
		{name: "five fields", value: "1.2.3.4.5", want: validate.IllegalVersion, wantCodes: []int{messages.CodeIllegalVersionValue}},
		{name: "field over 16 bits", value: "1.2.65536", want: validate.IllegalVersion, wantCodes: []int{messages.CodeIllegalVersionValue}},
		{name: "non numeric", value: "1.2.a", want: validate.IllegalVersion, wantCodes: []int{messages.CodeIllegalVersionValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := messages.NewCollector()
			p := validate.NewParser(collector)

			got := p.GetVersion(source.Unknown, "Product", "Version", tt.value)

			assert.Equal(t, tt.want, got)
			assertCodes(t, collector, tt.wantCodes)
		})
	}
}

func TestGetYesNo(t *testing.T) {
	collector := messages.NewCollector()
	p := validate.NewParser(collector)

	assert.Equal(t, validate.Yes, p.GetYesNo(source.Unknown, "E", "A", "yes"))
	assert.Equal(t, validate.No, p.GetYesNo(source.Unknown, "E", "A", "no"))
	assert.Equal(t, validate.YesNoNotSet, p.GetYesNo(source.Unknown, "E", "A", ""))
	assert.Empty(t, collector.Messages)

	assert.Equal(t, validate.IllegalYesNo, p.GetYesNo(source.Unknown, "E", "A", "true"))
	require.Len(t, collector.Messages, 1)
	assert.Equal(t, messages.CodeIllegalYesNoValue, collector.Messages[0].Code)
}

func TestGetGuid(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		want      string
		wantCodes []int
	}{
		{
			name:  "bare guid uppercased and wrapped",
			value: "01234567-89ab-cdef-0123-456789abcdef",
			want:  "{01234567-89AB-CDEF-0123-456789ABCDEF}",
		},
		{
			name:  "braced guid normalized",
			value: "{01234567-89ab-cdef-0123-456789abcdef}",
			want:  "{01234567-89AB-CDEF-0123-456789ABCDEF}",
		},
		{
			name:  "parenthesized guid normalized",
			value: "(01234567-89ab-cdef-0123-456789abcdef)",
			want:  "{01234567-89AB-CDEF-0123-456789ABCDEF}",
		},
		{name: "generatable wildcard passes through", value: "*", want: "*"},
		{name: "loc placeholder passes through", value: "!(loc.MyGuid)", want: "!(loc.MyGuid)"},
		{name: "bind placeholder passes through", value: "!(bind.property.G)", want: "!(bind.property.G)"},
		{name: "wix placeholder passes through", value: "!(wix.MyGuid)", want: "!(wix.MyGuid)"},
		{
			name:      "example guid rejected",
			value:     "PUT-GUID-HERE",
			want:      validate.IllegalGuid,
			wantCodes: []int{messages.CodeExampleGuid},
		},
		{
			name:      "numbered example guid rejected",
			value:     "{PUT-GUID-2-HERE}",
			want:      validate.IllegalGuid,
			wantCodes: []int{messages.CodeExampleGuid},
		},
		{
			name:      "garbage rejected",
			value:     "not-a-guid",
			want:      validate.IllegalGuid,
			wantCodes: []int{messages.CodeIllegalGuidValue},
		},
		{
			name:      "empty rejected",
			value:     "",
			want:      validate.IllegalGuid,
			wantCodes: []int{messages.CodeIllegalEmptyAttributeValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := messages.NewCollector()
			p := validate.NewParser(collector)

			got := p.GetGuid(source.Unknown, "Component", "Guid", tt.value)

			assert.Equal(t, tt.want, got)
			assertCodes(t, collector, tt.wantCodes)
		})
	}
}

func assertCodes(t *testing.T, collector *messages.Collector, want []int) {
	t.Helper()
	var got []int
	for _, m := range collector.Messages {
		got = append(got, m.Code)
	}
	assert.Equal(t, want, got)
}
