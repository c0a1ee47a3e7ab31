package exc

// Driver codes.
const (
	CodeUnknownFatal                  = "M0000"
	CodeFileNotFound                  = "M0001"
	CodeUnsuportedFileSystemOperation = "M0002"
	CodePermissionDenied              = "M0003"
	CodeUnsupportedFileFormat         = "M0004"
	CodeUnexpectedEOF                 = "M0005"
	CodeInvalidConfig                 = "M0006"
	CodeCrossCheckMismatch            = "M0007"
)

// Grammar codes. These follow the numbering used by the TypeScript compiler
// so that diagnostics can be compared against other tools.
const (
	CodeInvalidCharacter             = "TS1127"
	CodeUnterminatedStringLiteral    = "TS1002"
	CodeUnterminatedTemplateLiteral  = "TS1160"
	CodeUnterminatedComment          = "TS1010"
	CodeExpectedToken                = "TS1005"
	CodeUnexpectedToken              = "TS1012"
	CodeExpectedType                 = "TS1110"
	CodeExpectedIdentifier           = "TS1003"
	CodeExpectedExpression           = "TS1109"
	CodeModifierAlreadySeen          = "TS1030"
	CodeModifierCannotBeUsedHere     = "TS1042"
	CodeIndexSignatureModifier       = "TS1071"
	CodeSetAccessorReturnType        = "TS1095"
	CodeReadonlyTypeOperator         = "TS1354"
	CodeEnumMemberNumericName        = "TS2452"
	CodeEnumMemberComputedName       = "TS1164"
	CodeConstructorTypeThisParameter = "TS2681"
	CodeAccessorTypeParameters       = "TS1094"
	CodeInvalidNumber                = "TS1125"
	CodeLineBreakNotPermitted        = "TS1142"
	CodeAmbientImplementation        = "TS1183"
	CodeDecoratorsNotValid           = "TS1206"
)

const (
	CodeEOF = "_EOF_"
)

var (
	// defaultNonFatal lists the semantic diagnostics that the grammar reports
	// while continuing to produce a tree.
	defaultNonFatal = map[string]bool{
		CodeModifierAlreadySeen:          true,
		CodeModifierCannotBeUsedHere:     true,
		CodeIndexSignatureModifier:       true,
		CodeSetAccessorReturnType:        true,
		CodeReadonlyTypeOperator:         true,
		CodeConstructorTypeThisParameter: true,
		CodeAccessorTypeParameters:       true,
		CodeAmbientImplementation:        true,
		CodeCrossCheckMismatch:           true,
	}
)

// IsNonFatal reports whether code belongs to the default non-fatal set.
func IsNonFatal(code string) bool {
	return defaultNonFatal[code]
}
