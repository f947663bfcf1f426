package rewrite

// scanState enumerates the stages of the defect-shape scan.
// Any unexpected line aborts the scan back to seeking the next header;
// there is deliberately no recovery or partial match.
type scanState int

const (
	stateHeader scanState = iota
	statePreambleOne
	statePreambleTwo
	stateBlank
	stateParams
	stateCloser
)

// blockMatch records the line extents of one matched defect block.
type blockMatch struct {
	component   string
	headerIdx   int
	paramsStart int
	paramsEnd   int // exclusive
	closerIdx   int
}

// matchBlock attempts to match the five-step defect shape starting at start.
// The shape is, line by line:
//
//	export const Name = ({            header
//	  const { colors } = useTheme();  hook preamble (exactly two lines)
//	  const styles = useStyles();
//	                                  exactly one blank line
//	  propA,                          one or more bare prop names
//	  propB,
//	}) => {                           closer
//
// Every step must succeed on consecutive lines or the whole match is
// rejected and the caller resumes scanning after the candidate header.
func (r *Rewriter) matchBlock(lines []string, start int) (blockMatch, bool) {
	match := blockMatch{headerIdx: start}
	state := stateHeader

	for idx := start; idx < len(lines); idx++ {
		line := lines[idx]

		switch state {
		case stateHeader:
			sub := r.header.FindStringSubmatch(line)
			if sub == nil {
				return blockMatch{}, false
			}
			match.component = sub[1]
			state = statePreambleOne

		case statePreambleOne:
			if !r.preamble[0].MatchString(line) {
				return blockMatch{}, false
			}
			state = statePreambleTwo

		case statePreambleTwo:
			if !r.preamble[1].MatchString(line) {
				return blockMatch{}, false
			}
			state = stateBlank

		case stateBlank:
			if line != "" {
				return blockMatch{}, false
			}
			match.paramsStart = idx + 1
			state = stateParams

		case stateParams:
			if r.param.MatchString(line) {
				continue
			}
			// First non-prop line must be the closer, and at least one
			// prop line must have been collected.
			if idx == match.paramsStart {
				return blockMatch{}, false
			}
			match.paramsEnd = idx
			state = stateCloser
			fallthrough

		case stateCloser:
			if !r.closer.MatchString(line) {
				return blockMatch{}, false
			}
			match.closerIdx = idx
			return match, true
		}
	}

	return blockMatch{}, false
}
