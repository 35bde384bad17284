package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricPrefix = "hotkeyc_"

// RenderStats writes the compiler's own metrics from gatherer, one sample
// per line, sorted by name. Histograms print their count and sum.
func RenderStats(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		for _, m := range mf.GetMetric() {
			lines = append(lines, sampleLines(mf.GetName(), mf.GetType(), m)...)
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func sampleLines(name string, kind dto.MetricType, m *dto.Metric) []string {
	labels := formatLabels(m.GetLabel())
	switch kind {
	case dto.MetricType_COUNTER:
		return []string{fmt.Sprintf("%s%s %g", name, labels, m.GetCounter().GetValue())}
	case dto.MetricType_GAUGE:
		return []string{fmt.Sprintf("%s%s %g", name, labels, m.GetGauge().GetValue())}
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return []string{
			fmt.Sprintf("%s_count%s %d", name, labels, h.GetSampleCount()),
			fmt.Sprintf("%s_sum%s %g", name, labels, h.GetSampleSum()),
		}
	default:
		return nil
	}
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
