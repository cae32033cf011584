package cmd

import (
	"flag"

	"kharcha"
)

// filterFlags are the selection flags shared by the listing and report
// commands.
type filterFlags struct {
	period  string
	start   string
	date    string
	txType  string
	account string
	tag     string
}

func (ff *filterFlags) set(f *flag.FlagSet) {
	f.StringVar(&ff.period, "p", "", "Predefined period (day, week, month, year).")
	f.StringVar(&ff.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&ff.date, "d", "", "The end date for the range (defaults to today).")
	f.StringVar(&ff.txType, "t", "", "Entry type: expense, income or transfer.")
	f.StringVar(&ff.account, "on", "", "Only entries touching this account.")
	f.StringVar(&ff.tag, "tag", "", "Only entries carrying this tag.")
}

func (ff *filterFlags) parse() (kharcha.Filter, error) {
	var filter kharcha.Filter

	if ff.txType != "" {
		kind, err := kharcha.ParseTxType(ff.txType)
		if err != nil {
			return filter, err
		}
		filter.Type = kind
	}
	if ff.account != "" {
		id, err := kharcha.ParseID(ff.account)
		if err != nil {
			return filter, err
		}
		filter.Account = id
	}
	filter.Tag = ff.tag

	if ff.period == "" && ff.start == "" && ff.date == "" {
		return filter, nil
	}

	end := kharcha.Today()
	if ff.date != "" {
		var err error
		if end, err = kharcha.ParseDate(ff.date); err != nil {
			return filter, err
		}
	}
	switch {
	case ff.start != "":
		start, err := kharcha.ParseDate(ff.start)
		if err != nil {
			return filter, err
		}
		filter.Range = kharcha.NewRange(start, end)
	case ff.period != "":
		period, err := kharcha.ParsePeriod(ff.period)
		if err != nil {
			return filter, err
		}
		filter.Range = period.Range(end)
	default:
		filter.Range = kharcha.Daily.Range(end)
	}
	return filter, nil
}
