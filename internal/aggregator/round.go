package aggregator

import (
	"math"
	"strconv"
)

// round1 rounds half to even on the exact binary value, to one decimal.
func round1(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return 0
	}
	return v
}

func roundInt(x float64) int {
	return int(math.RoundToEven(x))
}

// percent1 is 100*part/whole to one decimal, 0 when whole is 0.
func percent1(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

// percentInt is 100*part/whole as a whole number, 0 when whole is 0.
func percentInt(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundInt(float64(part) / float64(whole) * 100)
}

// satisfaction weighs neutral records at half a positive one.
func satisfaction(c SentimentCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return (float64(c.Positive) + float64(c.Neutral)*0.5) / float64(total) * 100
}
