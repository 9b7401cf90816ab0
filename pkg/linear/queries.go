package linear

// GraphQL documents sent to Linear. Field selections match what the result
// types decode.

const teamsQuery = `
query {
  teams {
    nodes {
      id
      name
      key
    }
  }
}`

const usersQuery = `
query {
  users {
    nodes {
      id
      name
      email
    }
  }
}`

const issueByIdentifierQuery = `
query($identifier: String!) {
  issue(id: $identifier) {
    id
    identifier
  }
}`

const labelsQuery = `
query {
  issueLabels {
    nodes {
      id
      name
    }
  }
}`

const workflowStatesQuery = `
query {
  workflowStates {
    nodes {
      id
      name
      type
      team {
        id
        name
      }
    }
  }
}`

const assignedIssuesQuery = `
query IssuesByAssignee($filter: IssueFilter!, $first: Int!) {
  issues(filter: $filter, first: $first, orderBy: updatedAt) {
    nodes {
      identifier
      title
      url
      updatedAt
      dueDate
      priority
      state {
        name
        type
      }
    }
  }
}`

const issueCreateMutation = `
mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {
      id
      identifier
      title
      url
    }
  }
}`

const issueUpdateMutation = `
mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue {
      id
      identifier
      title
      url
    }
  }
}`

const commentCreateMutation = `
mutation CommentCreate($input: CommentCreateInput!) {
  commentCreate(input: $input) {
    success
    comment {
      id
      body
      user {
        name
        email
      }
      issue {
        identifier
        title
      }
    }
  }
}`

const commentUpdateMutation = `
mutation CommentUpdate($id: String!, $input: CommentUpdateInput!) {
  commentUpdate(id: $id, input: $input) {
    success
    comment {
      id
      body
      user {
        name
        email
      }
      issue {
        identifier
        title
      }
    }
  }
}`

const issueRelationCreateMutation = `
mutation IssueRelationCreate($input: IssueRelationCreateInput!) {
  issueRelationCreate(input: $input) {
    success
    issueRelation {
      id
      type
      issue {
        identifier
      }
      relatedIssue {
        identifier
      }
    }
  }
}`
