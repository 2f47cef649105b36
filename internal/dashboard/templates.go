package dashboard

const baseStyle = `
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
    .container { background: white; border-radius: 8px; padding: 20px; }
    h1 { color: #1da1f2; margin-bottom: 5px; }
    h2 { color: #333; border-bottom: 1px solid #eee; padding-bottom: 5px; }
    a { color: #1da1f2; text-decoration: none; }
    table { border-collapse: collapse; width: 100%; margin: 10px 0; }
    th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #eee; }
    th { color: #666; font-weight: 600; }
    .post { border-bottom: 1px solid #eee; padding: 12px 0; }
    .post:last-child { border-bottom: none; }
    .content { margin: 6px 0; line-height: 1.4; }
    .metrics { color: #666; font-size: 13px; }
    .date { color: #666; font-size: 13px; }
    img.chart { max-width: 100%; margin: 10px 0; border: 1px solid #eee; }
    form.inline { display: inline; }
    input[type=text] { padding: 6px; width: 320px; }
    button { padding: 6px 14px; background: #1da1f2; color: white; border: none; border-radius: 4px; cursor: pointer; }
    button.danger { background: #c0392b; }
`

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>nitterlens</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <h1>nitterlens</h1>
        <p>Profile timeline analytics via Nitter mirrors.</p>

        <h2>Analyze</h2>
        <form method="post" action="/analyze">
            <input type="text" name="usernames" placeholder="handles, comma-separated">
            <button type="submit">Analyze</button>
        </form>

        <h2>Analyzed Profiles</h2>
        {{if .Handles}}
        <table>
            {{range .Handles}}
            <tr>
                <td><a href="/user/{{.}}">@{{.}}</a></td>
                <td>
                    <form class="inline" method="post" action="/delete/{{.}}">
                        <button class="danger" type="submit">Delete</button>
                    </form>
                </td>
            </tr>
            {{end}}
        </table>
        {{else}}
        <p>No profiles analyzed yet.</p>
        {{end}}
    </div>
</body>
</html>`

const userTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>@{{.Handle}} - nitterlens</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <h1>@{{.Handle}}</h1>
        <p><a href="/">&larr; All profiles</a></p>

        <h2>Post Activity</h2>
        <table>
            <tr><th>Total posts</th><td>{{.Summary.TotalPosts}}</td></tr>
            <tr><th>Date range</th><td>{{.DateRange}}</td></tr>
        </table>

        <h2>Engagement</h2>
        <table>
            <tr><th>Total</th><td>{{.Summary.TotalEngagement}}</td></tr>
            <tr><th>Average per post</th><td>{{printf "%.2f" .Summary.AvgEngagement}}</td></tr>
            <tr><th>Peak</th><td>{{.Summary.PeakEngagement}}</td></tr>
            {{if gt .Summary.EngagementRate 0.0}}
            <tr><th>Engagement rate</th><td>{{printf "%.2f" .Summary.EngagementRate}}%</td></tr>
            {{end}}
        </table>

        <h2>Content Analysis</h2>
        <table>
            <tr><th>With hashtags</th><td>{{printf "%.1f" .Summary.HashtagPct}}%</td></tr>
            <tr><th>With mentions</th><td>{{printf "%.1f" .Summary.MentionPct}}%</td></tr>
            <tr><th>With links</th><td>{{printf "%.1f" .Summary.LinkPct}}%</td></tr>
            <tr><th>With media</th><td>{{printf "%.1f" .Summary.MediaPct}}%</td></tr>
            <tr><th>Average word count</th><td>{{printf "%.1f" .Summary.AvgWordCount}}</td></tr>
        </table>

        <h2>Posting Patterns</h2>
        <p>Optimal time: <strong>{{.BestTime}}</strong></p>

        {{if .Heatmap}}
        <h2>Engagement Heatmap</h2>
        <img class="chart" src="/static/{{.Heatmap}}" alt="engagement heatmap">
        {{end}}

        {{if .WordCloud}}
        <h2>Word Cloud</h2>
        <img class="chart" src="/static/{{.WordCloud}}" alt="word cloud">
        {{end}}

        {{if .Summary.TopHashtags}}
        <h2>Top Hashtags</h2>
        <table>
            {{range .Summary.TopHashtags}}<tr><td>{{.Text}}</td><td>{{.Count}} uses</td></tr>{{end}}
        </table>
        {{end}}

        <h2>Recent Posts</h2>
        {{range .Recent}}
        <div class="post">
            <div class="date">{{.DateText}}</div>
            <div class="content">{{.Content}}</div>
            <div class="metrics">{{.Replies}} replies &middot; {{.Retweets}} retweets &middot; {{.Likes}} likes</div>
        </div>
        {{end}}
    </div>
</body>
</html>`

const compareTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Comparison - nitterlens</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <h1>Profile Comparison</h1>
        <p><a href="/">&larr; All profiles</a></p>

        <h2>Overview</h2>
        <table>
            <tr>
                <th>Profile</th><th>Posts</th><th>Date range</th>
                <th>Total engagement</th><th>Avg engagement</th><th>Media %</th>
            </tr>
            {{range .Profiles}}
            <tr>
                <td><a href="/user/{{.Handle}}">@{{.Handle}}</a></td>
                <td>{{.Summary.TotalPosts}}</td>
                <td>{{.DateRange}}</td>
                <td>{{.Summary.TotalEngagement}}</td>
                <td>{{printf "%.2f" .Summary.AvgEngagement}}</td>
                <td>{{printf "%.1f" .Summary.MediaPct}}%</td>
            </tr>
            {{end}}
        </table>

        <h2>Engagement Rank</h2>
        <table>
            {{range $i, $e := .ByEngagement}}
            <tr><td>{{$e.Handle}}</td><td>{{printf "%.2f" $e.Summary.AvgEngagement}} avg</td></tr>
            {{end}}
        </table>

        <h2>Activity Rank</h2>
        <table>
            {{range .ByActivity}}
            <tr><td>{{.Handle}}</td><td>{{.Summary.TotalPosts}} posts</td></tr>
            {{end}}
        </table>

        <h2>Media Usage Rank</h2>
        <table>
            {{range .ByMediaUsage}}
            <tr><td>{{.Handle}}</td><td>{{printf "%.1f" .Summary.MediaPct}}%</td></tr>
            {{end}}
        </table>
    </div>
</body>
</html>`
