package messages

import "github.com/walteh/gowix/pkg/source"

// Stable diagnostic codes. Errors live below 1000, warnings at 1000 and up.
// Never renumber; append only.
const (
	CodeUnexpectedAttribute        = 4
	CodeUnexpectedElement          = 5
	CodeIllegalIntegerValue        = 8
	CodeIllegalLongValue           = 9
	CodeExpectedAttribute          = 10
	CodeIllegalIdentifier          = 14
	CodeIllegalYesNoValue          = 15
	CodeIllegalVersionValue        = 18
	CodeIllegalGuidValue           = 19
	CodeExampleGuid                = 20
	CodeIllegalEmptyAttributeValue = 21

	CodeUnknownLocalizationVariable = 102
	CodeUnknownBuildVariable        = 103
	CodeDuplicateVariableDefinition = 104
	CodeIllegalInlineDefaultValue   = 105
	CodeIllegalWixVariablePrefix    = 106

	CodeInvalidLocalizationRootElement = 110
	CodeInvalidLocalizationNamespace   = 111
	CodeExpectedLocalizationIdentifier = 112
	CodeControlAttributeWithoutControl = 113
	CodeDuplicateLocalizedControl      = 114
	CodeExpectedDialogOrControl        = 115
	CodeUnsupportedCodepage            = 116

	CodeIdentifierTooLong           = 1000
	CodeDeprecatedLocVariablePrefix = 1001
)

func errf(code int, loc source.Location, format string, args ...any) Message {
	return Message{Severity: SeverityError, Code: code, Location: loc, Format: format, Args: args}
}

func warnf(code int, loc source.Location, format string, args ...any) Message {
	return Message{Severity: SeverityWarning, Code: code, Location: loc, Format: format, Args: args}
}

func UnexpectedAttribute(loc source.Location, element, attribute string) Message {
	return errf(CodeUnexpectedAttribute, loc, "the %s element contains an unexpected attribute '%s'", element, attribute)
}

func UnexpectedElement(loc source.Location, parent, child string) Message {
	return errf(CodeUnexpectedElement, loc, "the %s element contains an unexpected child element '%s'", parent, child)
}

func IllegalIntegerValue(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalIntegerValue, loc, "the %s/@%s attribute's value, '%s', is not a legal integer value", element, attribute, value)
}

func IllegalLongValue(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalLongValue, loc, "the %s/@%s attribute's value, '%s', is not a legal long value", element, attribute, value)
}

func ExpectedAttribute(loc source.Location, element, attribute string) Message {
	return errf(CodeExpectedAttribute, loc, "the %s element must have a value for the %s attribute", element, attribute)
}

func IllegalIdentifier(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalIdentifier, loc, "the %s/@%s attribute's value, '%s', is not a legal identifier", element, attribute, value)
}

func IllegalYesNoValue(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalYesNoValue, loc, "the %s/@%s attribute's value, '%s', is not a legal yes/no value", element, attribute, value)
}

func IllegalVersionValue(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalVersionValue, loc, "the %s/@%s attribute's value, '%s', is not a valid version", element, attribute, value)
}

func IllegalGuidValue(loc source.Location, element, attribute, value string) Message {
	return errf(CodeIllegalGuidValue, loc, "the %s/@%s attribute's value, '%s', is not a legal guid value", element, attribute, value)
}

func ExampleGuid(loc source.Location, element, attribute, value string) Message {
	return errf(CodeExampleGuid, loc, "the %s/@%s attribute's value, '%s', is an example guid and must be replaced with a real guid", element, attribute, value)
}

func IllegalEmptyAttributeValue(loc source.Location, element, attribute string) Message {
	return errf(CodeIllegalEmptyAttributeValue, loc, "the %s/@%s attribute's value cannot be an empty string", element, attribute)
}

func UnknownLocalizationVariable(loc source.Location, name string) Message {
	return errf(CodeUnknownLocalizationVariable, loc, "the localization variable !(loc.%s) is unknown; ensure the variable is defined", name)
}

func UnknownBuildVariable(loc source.Location, name string) Message {
	return errf(CodeUnknownBuildVariable, loc, "the build variable !(wix.%s) is unknown", name)
}

func DuplicateVariableDefinition(loc source.Location, name string) Message {
	return errf(CodeDuplicateVariableDefinition, loc, "the variable '%s' is defined more than once and neither definition is overridable", name)
}

func IllegalInlineDefaultValue(loc source.Location, token string) Message {
	return errf(CodeIllegalInlineDefaultValue, loc, "the variable '%s' specifies an inline default value, which localization variables do not support", token)
}

func IllegalWixVariablePrefix(loc source.Location, token string) Message {
	return errf(CodeIllegalWixVariablePrefix, loc, "build variables must use the !(wix.name) form; '%s' is not allowed", token)
}

func InvalidLocalizationRootElement(loc source.Location, name string) Message {
	return errf(CodeInvalidLocalizationRootElement, loc, "the document's root element '%s' is not WixLocalization", name)
}

func InvalidLocalizationNamespace(loc source.Location, namespace string) Message {
	return errf(CodeInvalidLocalizationNamespace, loc, "the WixLocalization element's namespace '%s' is wrong; it must be %s", namespace, "http://schemas.microsoft.com/wix/2006/localization")
}

func ExpectedLocalizationIdentifier(loc source.Location) Message {
	return errf(CodeExpectedLocalizationIdentifier, loc, "the String element must have a non-empty Id attribute")
}

func ControlAttributeWithoutControl(loc source.Location, attribute string) Message {
	return errf(CodeControlAttributeWithoutControl, loc, "the UI/@%s attribute may only be used when the Control attribute is specified", attribute)
}

func DuplicateLocalizedControl(loc source.Location, dialog, control string) Message {
	return errf(CodeDuplicateLocalizedControl, loc, "a localized control for dialog '%s' and control '%s' is defined more than once", dialog, control)
}

func ExpectedDialogOrControl(loc source.Location) Message {
	return errf(CodeExpectedDialogOrControl, loc, "the UI element must specify a Dialog attribute, a Control attribute, or both")
}

func UnsupportedCodepage(loc source.Location, codepage string) Message {
	return errf(CodeUnsupportedCodepage, loc, "the codepage '%s' is not supported on this system", codepage)
}

func IdentifierTooLong(loc source.Location, element, attribute, value string) Message {
	return warnf(CodeIdentifierTooLong, loc, "the %s/@%s attribute's value, '%s', is over 72 characters and may cause problems with some installer engines", element, attribute, value)
}

func DeprecatedLocVariablePrefix(loc source.Location, name string) Message {
	return warnf(CodeDeprecatedLocVariablePrefix, loc, "the $(loc.%s) form is deprecated; use !(loc.%s) instead", name, name)
}
