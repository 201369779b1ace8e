package growth

import "github.com/arloliu/growthlaw/series"

// cpuHistory is a short, well-known microprocessor history ordered by year.
func cpuHistory() []series.Sample {
	return []series.Sample{
		{Label: "Intel 4004", Year: 1971, Value: 2300, Scale: 10000},
		{Label: "Intel 8080", Year: 1974, Value: 6000, Scale: 6000},
		{Label: "Intel 8086", Year: 1978, Value: 29000, Scale: 3000},
		{Label: "Intel 80286", Year: 1982, Value: 134000, Scale: 1500},
		{Label: "Intel 80386", Year: 1985, Value: 275000, Scale: 1000},
		{Label: "Intel 80486", Year: 1989, Value: 1200000, Scale: 1000},
		{Label: "Cyrix 6x86", Year: 1993, Value: 1000000, Scale: 650},
		{Label: "Intel Pentium", Year: 1993, Value: 3100000, Scale: 800},
	}
}
