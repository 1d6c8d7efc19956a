package github

// contributionsQuery fetches the trailing-year contribution calendar of a user
const contributionsQuery = `query($userName: String!) {
  user(login: $userName) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            contributionLevel
            color
          }
        }
      }
    }
  }
}`

// graphQLRequest is the body of a GraphQL POST
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphQLError is one entry of the errors array
type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// graphQLResponse mirrors the part of the response dono reads
type graphQLResponse struct {
	Data *struct {
		User *userData `json:"user"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type userData struct {
	ContributionsCollection struct {
		ContributionCalendar struct {
			TotalContributions int    `json:"totalContributions"`
			Weeks              []week `json:"weeks"`
		} `json:"contributionCalendar"`
	} `json:"contributionsCollection"`
}

type week struct {
	ContributionDays []contributionDay `json:"contributionDays"`
}

type contributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	ContributionLevel string `json:"contributionLevel"`
	Color             string `json:"color"`
}
