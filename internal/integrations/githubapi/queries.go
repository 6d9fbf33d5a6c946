package githubapi

const pinnedRepositoriesQuery = `
query($login: String!) {
  user(login: $login) {
    pinnedItems(first: 6, types: [REPOSITORY]) {
      edges {
        node {
          ... on Repository {
            name
            stars: stargazerCount
            description
            url
            forkCount
            primaryLanguage { name color }
          }
        }
      }
    }
  }
}`

const repositoriesQuery = `
query($login: String!, $after: String, $since: GitTimestamp!, $until: GitTimestamp!) {
  user(login: $login) {
    repositories(first: 100, after: $after, isFork: false) {
      edges {
        node {
          name
          stars: stargazerCount
          forkCount
          primaryLanguage { name color }
          commits: defaultBranchRef {
            target {
              ... on Commit {
                history(since: $since, until: $until) { totalCount }
              }
            }
          }
          languages(first: 100, orderBy: {field: SIZE, direction: DESC}) {
            edges {
              node { name color }
              size
            }
          }
        }
      }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const contributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      commits: totalCommitContributions
      issuesClosed: totalIssueContributions
      pullRequestsClosed: totalPullRequestContributions
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays { weekday date contributionCount color }
        }
      }
    }
  }
}`
