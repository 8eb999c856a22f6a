package returns

import (
	"fmt"
	"regexp"
	"strconv"

	"bahikhata/internal/domain"
)

// Financial years are written "2023-24" (or occasionally "2023-2024").
var fyPattern = regexp.MustCompile(`^(\d{4})-(\d{2}|\d{4})$`)

// AssessmentYear derives the assessment year from a financial year by
// incrementing both year components: FY 2023-24 is assessed in AY 2024-25.
// The width of the second component is preserved.
func AssessmentYear(financialYear string) (string, error) {
	m := fyPattern.FindStringSubmatch(financialYear)
	if m == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFinancialYear, financialYear)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	width := len(m[2])
	if width == 2 {
		return fmt.Sprintf("%d-%02d", start+1, (end+1)%100), nil
	}
	return fmt.Sprintf("%d-%d", start+1, end+1), nil
}
