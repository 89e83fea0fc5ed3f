package github

import "strings"

// PushEvent carries the subset of GitHub's push payload the webhook uses.
type PushEvent struct {
	Ref        string     `json:"ref"`
	Repository Repository `json:"repository"`
	HeadCommit *Commit    `json:"head_commit"`
}

type Repository struct {
	Name  string `json:"name"`
	Owner Owner  `json:"owner"`
}

type Owner struct {
	Login string `json:"login"`
}

type Commit struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	URL      string   `json:"url"`
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
}

// Branch returns the pushed branch name from the ref.
func (e *PushEvent) Branch() string {
	return strings.TrimPrefix(e.Ref, "refs/heads/")
}

// ChangedFiles returns the union of modified and added paths of the head commit.
func (c *Commit) ChangedFiles() []string {
	files := make([]string, 0, len(c.Modified)+len(c.Added))
	files = append(files, c.Modified...)
	files = append(files, c.Added...)
	return files
}
