package ucd

import "fmt"

// Category is a Unicode general category, as found in field 2 of UnicodeData.txt.
type Category uint8

// General categories. The zero value is not a valid category.
const (
	UppercaseLetter Category = iota + 1 // Lu
	LowercaseLetter                     // Ll
	TitlecaseLetter                     // Lt
	ModifierLetter                      // Lm
	OtherLetter                         // Lo
	NonspacingMark                      // Mn
	SpacingMark                         // Mc
	EnclosingMark                       // Me
	DecimalNumber                       // Nd
	LetterNumber                        // Nl
	OtherNumber                         // No
	ConnectorPunctuation                // Pc
	DashPunctuation                     // Pd
	OpenPunctuation                     // Ps
	ClosePunctuation                    // Pe
	InitialPunctuation                  // Pi
	FinalPunctuation                    // Pf
	OtherPunctuation                    // Po
	MathSymbol                          // Sm
	CurrencySymbol                      // Sc
	ModifierSymbol                      // Sk
	OtherSymbol                         // So
	SpaceSeparator                      // Zs
	LineSeparator                       // Zl
	ParagraphSeparator                  // Zp
	Control                             // Cc
	Format                              // Cf
	Surrogate                           // Cs
	PrivateUse                          // Co
	Unassigned                          // Cn
)

var categoryTags = [...]string{
	"", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co", "Cn",
}

var categoryByTag = func() map[string]Category {
	m := make(map[string]Category, len(categoryTags))
	for i, tag := range categoryTags[1:] {
		m[tag] = Category(i + 1)
	}
	return m
}()

// ParseCategory maps a two-letter tag like "Lu" to its Category.
// Grouping tags ("L", "LC", …) are not categories of a single code point
// and are rejected.
func ParseCategory(tag string) (Category, error) {
	if c, ok := categoryByTag[tag]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
}

func (c Category) String() string {
	if int(c) < len(categoryTags) && c != 0 {
		return categoryTags[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

func (c Category) IsCasedLetter() bool {
	return c == UppercaseLetter || c == LowercaseLetter || c == TitlecaseLetter
}

func (c Category) IsLetter() bool {
	return c >= UppercaseLetter && c <= OtherLetter
}

func (c Category) IsMark() bool {
	return c >= NonspacingMark && c <= EnclosingMark
}

func (c Category) IsNumber() bool {
	return c >= DecimalNumber && c <= OtherNumber
}

func (c Category) IsPunctuation() bool {
	return c >= ConnectorPunctuation && c <= OtherPunctuation
}

func (c Category) IsSymbol() bool {
	return c >= MathSymbol && c <= OtherSymbol
}

func (c Category) IsSeparator() bool {
	return c >= SpaceSeparator && c <= ParagraphSeparator
}

func (c Category) IsOther() bool {
	return c >= Control && c <= Unassigned
}
