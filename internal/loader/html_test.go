package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHTMLRows_Table(t *testing.T) {
	content := `<html><body>
<p>AI Use Case Inventory</p>
<table>
  <tr><th>Use Case ID</th><th>Use Case Name</th><th>Stage of Development</th></tr>
  <tr><td>TVA-1</td><td>Load   Forecasting</td><td>Deployed</td></tr>
  <tr><td>TVA-2</td><td>Outage <b>Prediction</b></td><td>Pilot</td></tr>
</table>
</body></html>`

	rows, err := ExtractHTMLRows(content)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Use Case ID", "Use Case Name", "Stage of Development"}, rows[0])
	assert.Equal(t, "Load Forecasting", rows[1][1])
	assert.Equal(t, "Outage Prediction", rows[2][1])
}

func TestExtractHTMLRows_FirstTableOnly(t *testing.T) {
	content := `<table><tr><th>Use Case Name</th></tr><tr><td>First</td></tr></table>
<table><tr><th>Other</th></tr><tr><td>Second</td></tr></table>`

	rows, err := ExtractHTMLRows(content)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "First", rows[1][0])
}

func TestExtractHTMLRows_TabSeparatedFallback(t *testing.T) {
	content := "Saved page text\n" +
		"Use Case ID\tUse Case Name\tStage of Development\n" +
		"TVA-1\tLoad Forecasting\tDeployed\n" +
		"TVA-2\tOutage Prediction\tPilot\n" +
		"footer line without tabs\n"

	rows, err := ExtractHTMLRows(content)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"TVA-1", "Load Forecasting", "Deployed"}, rows[1])
}

func TestExtractHTMLRows_NoData(t *testing.T) {
	_, err := ExtractHTMLRows("<html><body><p>nothing here</p></body></html>")
	assert.EqualError(t, err, "no table data found")
}

func TestExtractHTMLRows_HeaderOnlyTable(t *testing.T) {
	_, err := ExtractHTMLRows("<table><tr><th>Use Case Name</th></tr></table>")
	assert.Error(t, err)
}
