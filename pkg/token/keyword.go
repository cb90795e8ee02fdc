package token

// Keyword identifies one of Sonic's reserved words. An Identifier token
// whose text exactly matches one of these spellings is reclassified as
// Kind == KindKeyword with the matching Keyword payload.
type Keyword int

const (
	KwAssociatedtype Keyword = iota
	KwClass
	KwDeinit
	KwEnum
	KwExtension
	KwFileprivate
	KwFunc
	KwImport
	KwInit
	KwInout
	KwInternal
	KwLet
	KwOpen
	KwOperator
	KwPrivate
	KwPrecedencegroup
	KwProtocol
	KwPublic
	KwRethrows
	KwStatic
	KwStruct
	KwSubscript
	KwTypealias
	KwVar
	KwBreak
	KwCase
	KwCatch
	KwContinue
	KwDefault
	KwDefer
	KwDo
	KwElse
	KwFallthrough
	KwFor
	KwGuard
	KwIf
	KwIn
	KwRepeat
	KwReturn
	KwThrow
	KwSwitch
	KwWhere
	KwWhile
	KwAny
	KwAs
	KwFalse
	KwIs
	KwNil
	KwSelf
	KwSelfType
	KwSuper
	KwThrows
	KwTrue
	KwTry
	KwUnderscore
	KwAssociativity
	KwConvenience
	KwDidSet
	KwDynamic
	KwFinal
	KwGet
	KwIndirect
	KwInfix
	KwLazy
	KwLeft
	KwMutating
	KwNone
	KwNonmutating
	KwOptional
	KwOverride
	KwPostfix
	KwPrecedence
	KwPrefix
	KwProtocolType
	KwRequired
	KwRight
	KwSet
	KwSome
	KwTypeType
	KwUnowned
	KwWeak
	KwWillSet

	keywordCount
)

// keywordSpellings is the reserved-word table in source order, indexed by
// Keyword. It is also used in reverse (via keywordByText) for lookup.
var keywordSpellings = [...]string{
	KwAssociatedtype:  "associatedtype",
	KwClass:           "class",
	KwDeinit:          "deinit",
	KwEnum:            "enum",
	KwExtension:       "extension",
	KwFileprivate:     "fileprivate",
	KwFunc:            "func",
	KwImport:          "import",
	KwInit:            "init",
	KwInout:           "inout",
	KwInternal:        "internal",
	KwLet:             "let",
	KwOpen:            "open",
	KwOperator:        "operator",
	KwPrivate:         "private",
	KwPrecedencegroup: "precedencegroup",
	KwProtocol:        "protocol",
	KwPublic:          "public",
	KwRethrows:        "rethrows",
	KwStatic:          "static",
	KwStruct:          "struct",
	KwSubscript:       "subscript",
	KwTypealias:       "typealias",
	KwVar:             "var",
	KwBreak:           "break",
	KwCase:            "case",
	KwCatch:           "catch",
	KwContinue:        "continue",
	KwDefault:         "default",
	KwDefer:           "defer",
	KwDo:              "do",
	KwElse:            "else",
	KwFallthrough:     "fallthrough",
	KwFor:             "for",
	KwGuard:           "guard",
	KwIf:              "if",
	KwIn:              "in",
	KwRepeat:          "repeat",
	KwReturn:          "return",
	KwThrow:           "throw",
	KwSwitch:          "switch",
	KwWhere:           "where",
	KwWhile:           "while",
	KwAny:             "Any",
	KwAs:              "as",
	KwFalse:           "false",
	KwIs:              "is",
	KwNil:             "nil",
	KwSelf:            "self",
	KwSelfType:        "Self",
	KwSuper:           "super",
	KwThrows:          "throws",
	KwTrue:            "true",
	KwTry:             "try",
	KwUnderscore:      "_",
	KwAssociativity:   "associativity",
	KwConvenience:     "convenience",
	KwDidSet:          "didSet",
	KwDynamic:         "dynamic",
	KwFinal:           "final",
	KwGet:             "get",
	KwIndirect:        "indirect",
	KwInfix:           "infix",
	KwLazy:            "lazy",
	KwLeft:            "left",
	KwMutating:        "mutating",
	KwNone:            "none",
	KwNonmutating:     "nonmutating",
	KwOptional:        "optional",
	KwOverride:        "override",
	KwPostfix:         "postfix",
	KwPrecedence:      "precedence",
	KwPrefix:          "prefix",
	KwProtocolType:    "Protocol",
	KwRequired:        "required",
	KwRight:           "right",
	KwSet:             "set",
	KwSome:            "some",
	KwTypeType:        "Type",
	KwUnowned:         "unowned",
	KwWeak:            "weak",
	KwWillSet:         "willSet",
}

// keywordByText is built once from keywordSpellings for O(1) lookup.
var keywordByText = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordSpellings))
	for k, s := range keywordSpellings {
		m[s] = Keyword(k)
	}
	return m
}()

// String returns the reserved-word spelling for k.
func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordSpellings) {
		return keywordSpellings[k]
	}
	return "<invalid keyword>"
}

// LookupKeyword reports whether text is exactly one of Sonic's reserved
// words, and if so which one.
func LookupKeyword(text string) (Keyword, bool) {
	k, ok := keywordByText[text]
	return k, ok
}
