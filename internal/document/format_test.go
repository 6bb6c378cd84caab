package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "1.234", FormatWeight(1234))
	assert.Equal(t, "12", FormatWeight(12.4))
	assert.Equal(t, "0", FormatWeight(0))
	assert.Equal(t, "1.000.000", FormatWeight(1_000_000))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "1.234,50", FormatMoney(1234.5))
	assert.Equal(t, "0,00", FormatMoney(0))
	assert.Equal(t, "12.938,94", FormatMoney(12938.9375))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025", FormatDate(d))
}
