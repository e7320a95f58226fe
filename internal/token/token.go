package token

// Category groups token types by their role in the grammar.
type Category int

const (
	CATEGORY_VALUE Category = iota
	CATEGORY_OPERATOR
	CATEGORY_SYMBOL
	CATEGORY_KEYWORD
	CATEGORY_INVISIBLE
)

// Type represents the kind of token.
type Type int

const (
	// Values
	DOUBLE Type = iota // 12.5, .5
	LONG               // 42, -3, 12e4
	STRING             // "hello"
	IDENTIFIER         // variable_name

	// Keywords
	TRUE
	FALSE
	NULL
	KW_IF
	KW_THEN
	KW_ELSE

	// Operators
	EXPONENT                 // ^
	MULTIPLICATION           // *
	DIVISION                 // /
	MODULO                   // %
	PLUS                     // +
	MINUS                    // -
	GREATER_THAN             // >
	GREATER_THAN_OR_EQUAL    // >=
	LESS_THAN                // <
	LESS_THAN_OR_EQUAL       // <=
	VALUE_EQUALS             // ==
	VALUE_NOT_EQUALS         // !=
	VALUE_EQUALS_EXACT       // ===
	VALUE_NOT_EQUALS_EXACT   // !==
	BOOL_AND                 // &&
	BOOL_OR                  // ||
	BOOL_NOT                 // !
	CONCATENATE              // &
	NULL_COALESCE            // ??
	ASSIGN                   // =
	ARROW                    // ->

	// Symbols
	PARENTHESIS_OPEN          // (
	PARENTHESIS_CLOSE         // )
	OPTIONAL_PARENTHESIS_OPEN // ?(
	BRACKET_OPEN              // [
	BRACKET_CLOSE             // ]
	OPTIONAL_BRACKET_OPEN     // ?[
	COMMA                     // ,
	DOT                       // .
	OPTIONAL_DOT              // ?.

	// Invisible
	COMMENT // # until end of line
)

// Token is a single lexeme with its position in the source text.
// Row and Col are zero-based.
type Token struct {
	Type   Type
	Row    int
	Col    int
	Lexeme string
}

var names = map[Type]string{
	DOUBLE:                    "DOUBLE",
	LONG:                      "LONG",
	STRING:                    "STRING",
	IDENTIFIER:                "IDENTIFIER",
	TRUE:                      "TRUE",
	FALSE:                     "FALSE",
	NULL:                      "NULL",
	KW_IF:                     "IF",
	KW_THEN:                   "THEN",
	KW_ELSE:                   "ELSE",
	EXPONENT:                  "EXPONENT",
	MULTIPLICATION:            "MULTIPLICATION",
	DIVISION:                  "DIVISION",
	MODULO:                    "MODULO",
	PLUS:                      "PLUS",
	MINUS:                     "MINUS",
	GREATER_THAN:              "GREATER_THAN",
	GREATER_THAN_OR_EQUAL:     "GREATER_THAN_OR_EQUAL",
	LESS_THAN:                 "LESS_THAN",
	LESS_THAN_OR_EQUAL:        "LESS_THAN_OR_EQUAL",
	VALUE_EQUALS:              "VALUE_EQUALS",
	VALUE_NOT_EQUALS:          "VALUE_NOT_EQUALS",
	VALUE_EQUALS_EXACT:        "VALUE_EQUALS_EXACT",
	VALUE_NOT_EQUALS_EXACT:    "VALUE_NOT_EQUALS_EXACT",
	BOOL_AND:                  "BOOL_AND",
	BOOL_OR:                   "BOOL_OR",
	BOOL_NOT:                  "BOOL_NOT",
	CONCATENATE:               "CONCATENATE",
	NULL_COALESCE:             "NULL_COALESCE",
	ASSIGN:                    "ASSIGN",
	ARROW:                     "ARROW",
	PARENTHESIS_OPEN:          "PARENTHESIS_OPEN",
	PARENTHESIS_CLOSE:         "PARENTHESIS_CLOSE",
	OPTIONAL_PARENTHESIS_OPEN: "OPTIONAL_PARENTHESIS_OPEN",
	BRACKET_OPEN:              "BRACKET_OPEN",
	BRACKET_CLOSE:             "BRACKET_CLOSE",
	OPTIONAL_BRACKET_OPEN:     "OPTIONAL_BRACKET_OPEN",
	COMMA:                     "COMMA",
	DOT:                       "DOT",
	OPTIONAL_DOT:              "OPTIONAL_DOT",
	COMMENT:                   "COMMENT",
}

var representations = map[Type]string{
	TRUE:                      "true",
	FALSE:                     "false",
	NULL:                      "null",
	KW_IF:                     "if",
	KW_THEN:                   "then",
	KW_ELSE:                   "else",
	EXPONENT:                  "^",
	MULTIPLICATION:            "*",
	DIVISION:                  "/",
	MODULO:                    "%",
	PLUS:                      "+",
	MINUS:                     "-",
	GREATER_THAN:              ">",
	GREATER_THAN_OR_EQUAL:     ">=",
	LESS_THAN:                 "<",
	LESS_THAN_OR_EQUAL:        "<=",
	VALUE_EQUALS:              "==",
	VALUE_NOT_EQUALS:          "!=",
	VALUE_EQUALS_EXACT:        "===",
	VALUE_NOT_EQUALS_EXACT:    "!==",
	BOOL_AND:                  "&&",
	BOOL_OR:                   "||",
	BOOL_NOT:                  "!",
	CONCATENATE:               "&",
	NULL_COALESCE:             "??",
	ASSIGN:                    "=",
	ARROW:                     "->",
	PARENTHESIS_OPEN:          "(",
	PARENTHESIS_CLOSE:         ")",
	OPTIONAL_PARENTHESIS_OPEN: "?(",
	BRACKET_OPEN:              "[",
	BRACKET_CLOSE:             "]",
	OPTIONAL_BRACKET_OPEN:     "?[",
	COMMA:                     ",",
	DOT:                       ".",
	OPTIONAL_DOT:              "?.",
}

var categories = map[Type]Category{
	DOUBLE:     CATEGORY_VALUE,
	LONG:       CATEGORY_VALUE,
	STRING:     CATEGORY_VALUE,
	IDENTIFIER: CATEGORY_VALUE,

	TRUE:    CATEGORY_KEYWORD,
	FALSE:   CATEGORY_KEYWORD,
	NULL:    CATEGORY_KEYWORD,
	KW_IF:   CATEGORY_KEYWORD,
	KW_THEN: CATEGORY_KEYWORD,
	KW_ELSE: CATEGORY_KEYWORD,

	EXPONENT:               CATEGORY_OPERATOR,
	MULTIPLICATION:         CATEGORY_OPERATOR,
	DIVISION:               CATEGORY_OPERATOR,
	MODULO:                 CATEGORY_OPERATOR,
	PLUS:                   CATEGORY_OPERATOR,
	MINUS:                  CATEGORY_OPERATOR,
	GREATER_THAN:           CATEGORY_OPERATOR,
	GREATER_THAN_OR_EQUAL:  CATEGORY_OPERATOR,
	LESS_THAN:              CATEGORY_OPERATOR,
	LESS_THAN_OR_EQUAL:     CATEGORY_OPERATOR,
	VALUE_EQUALS:           CATEGORY_OPERATOR,
	VALUE_NOT_EQUALS:       CATEGORY_OPERATOR,
	VALUE_EQUALS_EXACT:     CATEGORY_OPERATOR,
	VALUE_NOT_EQUALS_EXACT: CATEGORY_OPERATOR,
	BOOL_AND:               CATEGORY_OPERATOR,
	BOOL_OR:                CATEGORY_OPERATOR,
	BOOL_NOT:               CATEGORY_OPERATOR,
	CONCATENATE:            CATEGORY_OPERATOR,
	NULL_COALESCE:          CATEGORY_OPERATOR,
	ASSIGN:                 CATEGORY_OPERATOR,
	ARROW:                  CATEGORY_OPERATOR,

	PARENTHESIS_OPEN:          CATEGORY_SYMBOL,
	PARENTHESIS_CLOSE:         CATEGORY_SYMBOL,
	OPTIONAL_PARENTHESIS_OPEN: CATEGORY_SYMBOL,
	BRACKET_OPEN:              CATEGORY_SYMBOL,
	BRACKET_CLOSE:             CATEGORY_SYMBOL,
	OPTIONAL_BRACKET_OPEN:     CATEGORY_SYMBOL,
	COMMA:                     CATEGORY_SYMBOL,
	DOT:                       CATEGORY_SYMBOL,
	OPTIONAL_DOT:              CATEGORY_SYMBOL,

	COMMENT: CATEGORY_INVISIBLE,
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Representation returns the canonical source text of fixed-shape tokens,
// e.g. ")" for PARENTHESIS_CLOSE. Value tokens return their type name.
func (t Type) Representation() string {
	if rep, ok := representations[t]; ok {
		return rep
	}
	return t.String()
}

func (t Type) Category() Category {
	return categories[t]
}
